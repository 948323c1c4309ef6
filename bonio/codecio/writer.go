package codecio

import (
	"io"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/codec"
)

// Writer writes values back to back in the BON encoding.
type Writer struct {
	writer io.WriteCloser
}

func NewWriter(w io.WriteCloser) *Writer {
	return &Writer{writer: w}
}

func (w *Writer) Write(v bon.Value) error {
	b, err := codec.Serialize(v)
	if err != nil {
		return err
	}
	_, err = b.WriteTo(w.writer)
	return err
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
