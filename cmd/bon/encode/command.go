package encode

import (
	"flag"

	"github.com/brimdata/bon/cli/inputflags"
	"github.com/brimdata/bon/cli/outputflags"
	"github.com/brimdata/bon/cmd/bon/root"
	"github.com/brimdata/bon/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "encode",
	Usage: "encode [options] [file ...]",
	Short: "encode values as BON",
	Long: `
"bon encode" reads values from each file, or from standard input if no
file is given, and writes their BON encodings back to back.  The input is
a stream of YAML documents by default.  Atoms, tuples, lists, sets and maps
with non-string keys are written in YAML with the tags !atom, !tuple,
!list, !set and !map.  Binaries use the standard !!binary tag.

BON is not sent to a terminal unless -B is given.  Text is written instead.`,
	New: New,
}

type Command struct {
	*root.Command
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.inputFlags.DefaultFormat = "yaml"
	c.inputFlags.SetFlags(f)
	c.outputFlags.DefaultFormat = "bon"
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
