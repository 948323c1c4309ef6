package clierrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brimdata/bon/bonerr"
	"go.uber.org/multierr"
)

// Format expands a combined error into its parts and renders each BON
// parse error with a pointer to the offending input.
func Format(err error) error {
	if err == nil {
		return err
	}
	var errs []error
	for _, err := range multierr.Errors(err) {
		var e *bonerr.Error
		if errors.As(err, &e) && e.Located {
			err = formatParseError(err, e)
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// formatParseError renders e, keeping any context that wraps it, followed
// by the remaining input, empty when the input ran out, with a caret under
// its first byte.
func formatParseError(err error, e *bonerr.Error) error {
	var b strings.Builder
	prefix := strings.TrimSuffix(err.Error(), e.Error())
	fmt.Fprintf(&b, "%s%s: %s (offset %d):\n", prefix, e.Kind, e.Message(), e.Offset)
	rest := fmt.Sprintf("%q", e.Remainder)
	rest = rest[1 : len(rest)-1]
	fmt.Fprintf(&b, "%s\n", rest)
	b.WriteString("^ ===")
	if e.Partial != "" && e.Partial != "[]" {
		fmt.Fprintf(&b, "\nparsed so far in this group: %s", e.Partial)
	}
	return errors.New(b.String())
}
