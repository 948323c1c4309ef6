// Package bonio defines streams of bon values and the plumbing that
// connects them.  The formats live in its subpackages.
package bonio

import (
	"context"
	"fmt"
	"io"

	"github.com/brimdata/bon"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

func Extension(format string) string {
	switch format {
	case "bon":
		return ".bon"
	case "yaml":
		return ".yaml"
	case "text":
		return ".txt"
	default:
		return ""
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

// Reader wraps the Read method.
//
// Read returns the next value and a nil error, a nil value and the next
// error, or a nil value and nil error to indicate that no values remain.
type Reader interface {
	Read() (bon.Value, error)
}

type Writer interface {
	Write(bon.Value) error
}

type ReadCloser interface {
	Reader
	io.Closer
}

type WriteCloser interface {
	Writer
	io.Closer
}

func NopReadCloser(r Reader) ReadCloser {
	return nopReadCloser{r}
}

type nopReadCloser struct {
	Reader
}

func (nopReadCloser) Close() error { return nil }

// ConcatReader returns a Reader that is the logical concatenation of readers,
// which are read sequentially.
func ConcatReader(readers ...Reader) Reader {
	if len(readers) == 1 {
		return readers[0]
	}
	return &concatReader{slices.Clone(readers)}
}

type concatReader struct {
	readers []Reader
}

func (c *concatReader) Read() (bon.Value, error) {
	for len(c.readers) > 0 {
		v, err := c.readers[0].Read()
		if v != nil || err != nil {
			return v, err
		}
		c.readers = c.readers[1:]
	}
	return nil, nil
}

// NamedReader returns a Reader that prefixes the errors of r with name.
func NamedReader(r Reader, name string) Reader {
	return &namedReader{r, name}
}

type namedReader struct {
	Reader
	name string
}

func (n *namedReader) Read() (bon.Value, error) {
	v, err := n.Reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.name, err)
	}
	return v, nil
}

// SliceReader returns a Reader over vals.
func SliceReader(vals []bon.Value) Reader {
	return &sliceReader{vals}
}

type sliceReader struct {
	vals []bon.Value
}

func (s *sliceReader) Read() (bon.Value, error) {
	if len(s.vals) == 0 {
		return nil, nil
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v, nil
}

// Copy copies src to dst a la io.Copy.
func Copy(dst Writer, src Reader) error {
	return CopyWithContext(context.Background(), dst, src)
}

func CopyWithContext(ctx context.Context, dst Writer, src Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := src.Read()
		if err != nil || v == nil {
			return err
		}
		if err := dst.Write(v); err != nil {
			return err
		}
	}
}

// ReadAll returns the values remaining in r.
func ReadAll(r Reader) ([]bon.Value, error) {
	var vals []bon.Value
	for {
		v, err := r.Read()
		if err != nil || v == nil {
			return vals, err
		}
		vals = append(vals, v)
	}
}

// CloseReaders closes the readers that implement io.Closer and returns the
// combined errors.
func CloseReaders(readers []Reader) error {
	var err error
	for _, reader := range readers {
		if closer, ok := reader.(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
	}
	return err
}
