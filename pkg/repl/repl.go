// Package repl is a simple read-eval-print loop.  It calls the Consumer
// to do all the eval work.
package repl

import (
	"errors"
	"io"

	"github.com/peterh/liner"
)

type Consumer interface {
	Consume(line string) bool
	Prompt() string
}

// Run executes the REPL until the Consumer reports it is done, the input
// ends or the user aborts a prompt.
func Run(c Consumer) error {
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)
	for {
		line, err := l.Prompt(c.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}
		if c.Consume(line) {
			return nil
		}
		l.AppendHistory(line)
	}
}
