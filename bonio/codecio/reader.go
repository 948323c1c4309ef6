// Package codecio reads and writes streams of BON-encoded values.
package codecio

import (
	"bytes"
	"io"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/codec"
)

// Reader reads back-to-back BON values.  The encoding has no framing, so
// the input is read in full, up to Options.MaxInput bytes, before the first
// value is returned.
type Reader struct {
	r      io.Reader
	dec    *codec.Decoder
	limit  int
	parser *codec.Parser
}

func NewReader(r io.Reader, opts codec.Options) *Reader {
	return &Reader{
		r:     r,
		dec:   codec.NewDecoder(opts),
		limit: opts.MaxInput,
	}
}

func (r *Reader) Read() (bon.Value, error) {
	if r.parser == nil {
		src := r.r
		if r.limit > 0 {
			// One extra byte lets the decoder report the overflow.
			src = io.LimitReader(src, int64(r.limit)+1)
		}
		b, err := io.ReadAll(src)
		if err != nil {
			return nil, err
		}
		if r.limit <= 0 || len(b) <= r.limit {
			b = trimLineEnd(b)
		}
		p, err := r.dec.NewParser(b)
		if err != nil {
			return nil, err
		}
		r.parser = p
	}
	v, err := r.parser.Next()
	if err == io.EOF {
		return nil, nil
	}
	return v, err
}

// trimLineEnd drops the line terminators that editors and shell pipelines
// leave after the last value.  No BON value ends in '\n' or '\r'.
func trimLineEnd(b []byte) []byte {
	return bytes.TrimRight(b, "\r\n")
}
