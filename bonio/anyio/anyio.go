// Package anyio opens readers and writers of any supported format.
package anyio

import (
	"fmt"
	"io"

	"github.com/brimdata/bon/bonio"
	"github.com/brimdata/bon/bonio/codecio"
	"github.com/brimdata/bon/bonio/textio"
	"github.com/brimdata/bon/bonio/yamlio"
	"github.com/brimdata/bon/codec"
)

// Formats lists the names accepted by NewReader and NewWriter.
var Formats = []string{"bon", "yaml", "text"}

type ReaderOpts struct {
	Format string
	Codec  codec.Options
}

type WriterOpts struct {
	Format string
	Text   textio.WriterOpts
}

func NewReader(r io.Reader, opts ReaderOpts) (bonio.Reader, error) {
	switch opts.Format {
	case "bon":
		return codecio.NewReader(r, opts.Codec), nil
	case "yaml":
		return yamlio.NewReader(r), nil
	}
	return nil, fmt.Errorf("no such input format: %q", opts.Format)
}

func NewWriter(w io.WriteCloser, opts WriterOpts) (bonio.WriteCloser, error) {
	switch opts.Format {
	case "bon":
		return codecio.NewWriter(w), nil
	case "yaml":
		return yamlio.NewWriter(w), nil
	case "text":
		return textio.NewWriter(w, opts.Text), nil
	}
	return nil, fmt.Errorf("no such output format: %q", opts.Format)
}
