package inputflags

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/alecthomas/units"
	"github.com/brimdata/bon/bonio"
	"github.com/brimdata/bon/bonio/anyio"
	"github.com/brimdata/bon/codec"
	"github.com/brimdata/bon/pkg/ctxio"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const DefaultMaxSize = "64MiB"

type Flags struct {
	anyio.ReaderOpts
	DefaultFormat string
	maxSize       string
}

func (f *Flags) Options() anyio.ReaderOpts {
	return f.ReaderOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	if f.DefaultFormat == "" {
		f.DefaultFormat = "bon"
	}
	fs.StringVar(&f.Format, "i", f.DefaultFormat, "format of input data [bon,yaml]")
	fs.StringVar(&f.maxSize, "maxsize", DefaultMaxSize, "largest input accepted, as '10MB' or '4GiB', etc.")
	fs.IntVar(&f.Codec.MaxDepth, "maxdepth", codec.DefaultMaxDepth, "deepest nesting of BON groups accepted")
	fs.BoolVar(&f.Codec.Lists, "lists", false, "decode BON lists as persistent lists rather than arrays")
}

// Init is called after flags have been parsed.
func (f *Flags) Init() error {
	switch f.Format {
	case "bon", "yaml":
	default:
		return fmt.Errorf("-i: no such input format: %q", f.Format)
	}
	n, err := units.ParseStrictBytes(f.maxSize)
	if err != nil {
		return fmt.Errorf("-maxsize: %w", err)
	}
	if n <= 0 || n > math.MaxInt32 {
		return fmt.Errorf("-maxsize: %s out of range", f.maxSize)
	}
	f.Codec.MaxInput = int(n)
	if f.Codec.MaxDepth <= 0 {
		return fmt.Errorf("-maxdepth: must be positive")
	}
	return nil
}

// Open reads the inputs named by paths, with "-" meaning standard input,
// and returns a reader for each in the same order that names the input in
// its errors.  Files are read
// concurrently.  The error for each input that could not be read is
// returned, combined.
func (f *Flags) Open(ctx context.Context, paths []string) ([]bonio.Reader, error) {
	readers := make([]bonio.Reader, len(paths))
	errs := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, path := range paths {
		k, path := k, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[k] = err
				return nil
			}
			data, err := f.readFile(ctx, path)
			var r bonio.Reader
			if err == nil {
				r, err = anyio.NewReader(bytes.NewReader(data), f.ReaderOpts)
			}
			if err != nil {
				errs[k] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			readers[k] = bonio.NamedReader(r, path)
			return nil
		})
	}
	g.Wait()
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return readers, nil
}

func (f *Flags) readFile(ctx context.Context, path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	limit := f.Codec.MaxInput
	if limit <= 0 {
		return ctxio.ReadAll(ctx, r)
	}
	data, err := ctxio.ReadAll(ctx, io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limit {
		return nil, fmt.Errorf("input exceeds -maxsize of %s", units.Base2Bytes(limit))
	}
	return data, nil
}
