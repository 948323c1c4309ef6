package root

import (
	"context"
	"flag"

	"github.com/brimdata/bon/bonio"
	"github.com/brimdata/bon/cli"
	"github.com/brimdata/bon/cli/clierrors"
	"github.com/brimdata/bon/cli/inputflags"
	"github.com/brimdata/bon/cli/logflags"
	"github.com/brimdata/bon/cli/outputflags"
	"github.com/brimdata/bon/pkg/charm"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var Bon = &charm.Spec{
	Name:  "bon",
	Usage: "bon <command> [options] [arguments...]",
	Short: "encode, decode and explore BON values",
	Long: `
bon is a command-line tool for the BON encoding, a compact textual
serialization of integers, exact rational floats, atoms, strings, binaries,
tuples, lists, maps and sets.

"bon encode" turns YAML documents into BON and "bon decode" turns BON back
into YAML or text.  "bon check" verifies that values survive a round trip.
"bon repl" encodes and decodes values interactively.`,
	New: New,
}

type Command struct {
	charm.Command
	cli.Flags
	LogFlags logflags.Flags
	Logger   *zap.Logger
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Logger: zap.NewNop()}
	c.SetFlags(f)
	c.LogFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}

// Init initializes the shared flags and each flag group in all, then opens
// the logger.
func (c *Command) Init(all ...cli.Initializer) (context.Context, func(), error) {
	ctx, cleanup, err := c.Flags.Init(all...)
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.LogFlags.Open()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	c.Logger = logger
	return ctx, func() {
		logger.Sync()
		cleanup()
	}, nil
}

// OpenInputs returns a reader over the values of the inputs named by
// paths, or of standard input if there are none.
func (c *Command) OpenInputs(ctx context.Context, in *inputflags.Flags, paths []string) (bonio.Reader, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	in.Codec.Logger = c.Logger
	readers, err := in.Open(ctx, paths)
	if err != nil {
		return nil, clierrors.Format(err)
	}
	return bonio.ConcatReader(readers...), nil
}

// Copy writes the values of the inputs named by paths to the output.
func (c *Command) Copy(ctx context.Context, in *inputflags.Flags, out *outputflags.Flags, paths []string) error {
	r, err := c.OpenInputs(ctx, in, paths)
	if err != nil {
		return err
	}
	w, err := out.Open()
	if err != nil {
		return err
	}
	err = bonio.CopyWithContext(ctx, w, r)
	err = multierr.Append(err, w.Close())
	if err != nil {
		c.Logger.Info("Copy failed", zap.Strings("inputs", paths), zap.Error(err))
	}
	return clierrors.Format(err)
}
