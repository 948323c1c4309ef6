// Package textio writes values in their human-readable form, one per line.
package textio

import (
	"fmt"
	"io"

	"github.com/brimdata/bon"
	"github.com/kr/text"
)

type WriterOpts struct {
	// Indent prefixes every line of output.
	Indent string
}

type Writer struct {
	WriterOpts
	writer io.WriteCloser
}

func NewWriter(w io.WriteCloser, opts WriterOpts) *Writer {
	return &Writer{
		WriterOpts: opts,
		writer:     w,
	}
}

func (w *Writer) Write(v bon.Value) error {
	s := bon.Format(v)
	if w.Indent != "" {
		s = text.Indent(s, w.Indent)
	}
	_, err := fmt.Fprintln(w.writer, s)
	return err
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
