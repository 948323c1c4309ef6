// Package yamlio reads and writes streams of values as YAML documents.
package yamlio

import (
	"io"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/brimdata/bon/yamlbon"
	"gopkg.in/yaml.v3"
)

type Reader struct {
	dec *yaml.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{yaml.NewDecoder(r)}
}

func (r *Reader) Read() (bon.Value, error) {
	var n yaml.Node
	if err := r.dec.Decode(&n); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, bonerr.E(bonerr.BadSyntax, err)
	}
	return yamlbon.FromNode(&n)
}

type Writer struct {
	writer io.WriteCloser
	enc    *yamlbon.Encoder
}

func NewWriter(w io.WriteCloser) *Writer {
	return &Writer{writer: w, enc: yamlbon.NewEncoder(w)}
}

func (w *Writer) Write(v bon.Value) error {
	return w.enc.Encode(v)
}

func (w *Writer) Close() error {
	err := w.enc.Close()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
