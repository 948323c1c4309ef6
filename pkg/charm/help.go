package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/text"
	"golang.org/x/term"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a subcommand, type "help command" where command is the name of
the command.  For help on command nested further, type "help cmd1 cmd2" and
so forth.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	vflag bool
}

// splitFlags is like strings.Split with a comma and also trims whitespace
func splitFlags(flags string) []string {
	var out []string
	for _, flag := range strings.Split(flags, ",") {
		out = append(out, strings.TrimSpace(flag))
	}
	return out
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.
func flagMap(flags string) map[string]bool {
	hidden := make(map[string]bool)
	for _, flag := range splitFlags(flags) {
		hidden[flag] = true
	}
	return hidden
}

// search instantiates the commands named by args starting at the root.
func search(root *Spec, args []string) (path, error) {
	inst, err := newInstance(nil, root)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for k, arg := range args {
		sub := p.last().spec.lookupSub(arg)
		if sub == nil {
			return nil, fmt.Errorf("no such command: %s", strings.Join(args[:k+1], " "))
		}
		inst, err := newInstance(p.last().command, sub)
		if err != nil {
			return nil, err
		}
		p = append(p, inst)
	}
	return p, nil
}

func (c *HelpCommand) Run(args []string) error {
	p, err := search(Help.Root(), args)
	if err != nil {
		return err
	}
	displayHelp(os.Stderr, p, c.vflag)
	return nil
}

const tab = "    "

// lineWidth is the width of help text, from the terminal on standard
// error if there is one.
func lineWidth() int {
	w, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || w <= 0 {
		w = 80
	}
	return w - len(tab) - 5
}

func formatParagraph(body string, width int) string {
	var chunks []string
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		if len(paragraph) >= width {
			paragraph = text.Wrap(strings.TrimSpace(paragraph), width)
		}
		chunks = append(chunks, strings.TrimRight(paragraph, " \t\n"))
	}
	return text.Indent(strings.Join(chunks, "\n\n"), tab)
}

func header(heading string) string {
	return "\033[1m" + heading + "\033[0m"
}

func helpItem(w io.Writer, heading, body string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+body+"\n\n")
}

func helpDesc(w io.Writer, heading, body string, width int) {
	fmt.Fprint(w, header(heading)+"\n"+formatParagraph(body, width)+"\n\n")
}

func helpList(w io.Writer, heading string, lines []string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+strings.Join(lines, "\n"+tab)+"\n\n")
}

func commands(target *Spec, vflag bool) []string {
	var lines []string
	for _, cmd := range target.children {
		name := cmd.Name
		if cmd.Hidden {
			if !vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+cmd.Short)
	}
	return lines
}

// options lists the flags of each command on the path, innermost first,
// each ancestor's flags under a header naming it.
func (p path) options(vflag bool) []string {
	options := p.last().options(vflag)
	if len(options) == 0 {
		options = []string{"no flags for this command"}
	}
	for k := len(p) - 2; k >= 0; k-- {
		parentOptions := p[k].options(vflag)
		if len(parentOptions) == 0 {
			continue
		}
		options = append(options, "", "["+p[:k+1].pathname()+" flags]")
		options = append(options, parentOptions...)
	}
	return options
}

func displayHelp(w io.Writer, p path, vflag bool) {
	spec := p.last().spec
	width := lineWidth()
	helpItem(w, "NAME", spec.Name+" - "+spec.Short)
	helpDesc(w, "USAGE", spec.Usage, width)
	helpList(w, "OPTIONS", p.options(vflag))
	if len(spec.children) > 0 {
		helpList(w, "COMMANDS", commands(spec, vflag))
	}
	if spec.Long != "" {
		helpDesc(w, "DESCRIPTION", spec.Long, width)
	}
}
