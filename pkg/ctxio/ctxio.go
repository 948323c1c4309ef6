// Package ctxio provides readers that abort long running reads when a
// context.Context is done.
package ctxio

import (
	"context"
	"io"
)

type reader struct {
	io.Reader
	ctx context.Context
}

// NewReader returns a reader whose Read fails with the error of ctx once
// ctx is done.  A read already in progress is not interrupted.
func NewReader(ctx context.Context, r io.Reader) io.Reader {
	return &reader{r, ctx}
}

func (r *reader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.Reader.Read(p)
}

// ReadAll reads r until EOF like io.ReadAll, checking ctx between reads.
func ReadAll(ctx context.Context, r io.Reader) ([]byte, error) {
	return io.ReadAll(NewReader(ctx, r))
}
