package check

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonio"
	"github.com/brimdata/bon/cli/clierrors"
	"github.com/brimdata/bon/cli/inputflags"
	"github.com/brimdata/bon/cmd/bon/root"
	"github.com/brimdata/bon/codec"
	"github.com/brimdata/bon/pkg/charm"
	"github.com/brimdata/bon/pkg/plural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var Cmd = &charm.Spec{
	Name:  "check",
	Usage: "check [options] [file ...]",
	Short: "verify that values survive a BON round trip",
	Long: `
"bon check" reads values from each file, or from standard input if no file
is given, encodes each as BON, decodes the encoding and compares the result
with the value read.  Every value that fails is reported and the command
exits with an error.  Otherwise the number of values checked is printed.

The input is YAML by default.  With -i bon the input is itself BON.`,
	New: New,
}

type Command struct {
	*root.Command
	inputFlags inputflags.Flags
	quiet      bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.inputFlags.DefaultFormat = "yaml"
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.quiet, "q", false, "do not print the count of values checked")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.inputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	r, err := c.OpenInputs(ctx, &c.inputFlags, args)
	if err != nil {
		return err
	}
	n, err := Check(ctx, r, c.Logger)
	if err != nil {
		return clierrors.Format(err)
	}
	if !c.quiet {
		fmt.Fprintf(os.Stdout, "%s ok\n", plural.Of(n, "value"))
	}
	return nil
}

// Check round-trips each value read from r and returns the number of
// values read.  The failure of every value is returned, combined.  A read
// error stops the check.
func Check(ctx context.Context, r bonio.Reader, logger *zap.Logger) (int, error) {
	var n int
	var errs error
	for {
		if err := ctx.Err(); err != nil {
			return n, multierr.Append(errs, err)
		}
		v, err := r.Read()
		if err != nil {
			return n, multierr.Append(errs, err)
		}
		if v == nil {
			return n, errs
		}
		n++
		if err := codec.RoundTrip(v); err != nil {
			logger.Debug("Round trip failed", zap.Int("index", n), zap.Stringer("value", stringer{v}))
			errs = multierr.Append(errs, fmt.Errorf("value %d: %w", n, err))
		}
	}
}

type stringer struct{ bon.Value }

func (s stringer) String() string { return bon.Format(s.Value) }

