package decode

import (
	"flag"

	"github.com/brimdata/bon/cli/inputflags"
	"github.com/brimdata/bon/cli/outputflags"
	"github.com/brimdata/bon/cmd/bon/root"
	"github.com/brimdata/bon/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "decode",
	Usage: "decode [options] [file ...]",
	Short: "decode BON values",
	Long: `
"bon decode" reads back-to-back BON values from each file, or from standard
input if no file is given, and writes them as YAML documents (see "bon help
encode" for the tags used) or, with -t, as one line of text per value.

A malformed input is reported with the offset of the offending byte and
the input that follows it.  The values already parsed in the enclosing
group are shown too.`,
	New: New,
}

type Command struct {
	*root.Command
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.inputFlags.DefaultFormat = "bon"
	c.inputFlags.SetFlags(f)
	c.outputFlags.DefaultFormat = "yaml"
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.inputFlags, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	return c.Copy(ctx, &c.inputFlags, &c.outputFlags, args)
}
