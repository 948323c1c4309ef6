package replcmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/cli/clierrors"
	"github.com/brimdata/bon/cmd/bon/root"
	"github.com/brimdata/bon/codec"
	"github.com/brimdata/bon/pkg/charm"
	"github.com/brimdata/bon/pkg/repl"
	"github.com/brimdata/bon/yamlbon"
	"go.uber.org/zap"
)

var Cmd = &charm.Spec{
	Name:  "repl",
	Usage: "repl [options]",
	Short: "encode and decode values interactively",
	Long: `
"bon repl" reads one line at a time.  A line holding a YAML value (see "bon
help encode" for the tags used) prints its BON encoding as a quoted string
and warns if the encoding does not decode to the same value.  A line of the
form "decode <bon>" prints the value held by the BON text that follows the
word "decode".  "quit" or "exit" ends the session, as does end of input.`,
	New: New,
}

type Command struct {
	*root.Command
	lists bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.lists, "lists", false, "decode BON lists as persistent lists rather than arrays")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("repl: unexpected argument %q", args[0])
	}
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	dec := codec.NewDecoder(codec.Options{Lists: c.lists, Logger: c.Logger})
	return repl.Run(newSession(os.Stdout, dec, c.Logger))
}

type session struct {
	w      io.Writer
	dec    *codec.Decoder
	logger *zap.Logger
}

func newSession(w io.Writer, dec *codec.Decoder, logger *zap.Logger) *session {
	return &session{w: w, dec: dec, logger: logger}
}

func (*session) Prompt() string {
	return "bon> "
}

// Consume evaluates line and reports whether the session is over.
func (s *session) Consume(line string) bool {
	switch cmd := strings.TrimSpace(line); {
	case cmd == "":
	case cmd == "quit" || cmd == "exit":
		return true
	case cmd == "decode" || strings.HasPrefix(cmd, "decode "):
		s.decode(strings.TrimPrefix(strings.TrimLeft(line, " \t"), "decode"))
	default:
		s.encode(line)
	}
	return false
}

func (s *session) decode(text string) {
	v, err := s.dec.Decode([]byte(text))
	if err != nil {
		s.fail(clierrors.Format(err))
		return
	}
	fmt.Fprintln(s.w, bon.Format(v))
}

func (s *session) encode(line string) {
	v, err := yamlbon.Unmarshal([]byte(line))
	if err != nil {
		s.fail(err)
		return
	}
	b, err := codec.Encode(v)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.w, "%q\n", b)
	if err := codec.RoundTrip(v); err != nil {
		fmt.Fprintf(s.w, "warning: %s\n", err)
	}
}

func (s *session) fail(err error) {
	s.logger.Debug("REPL line failed", zap.Error(err))
	fmt.Fprintf(s.w, "error: %s\n", err)
}
