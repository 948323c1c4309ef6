// Package bonerr provides a mechanism to create or wrap errors raised by the
// BON codec with a Kind that callers can test for, plus the diagnostic
// state of the parser at the point of failure.
package bonerr

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
)

// A Kind represents a class of codec error.
type Kind int

const (
	Other Kind = iota
	NotANumber
	UnknownType
	BadSyntax
	TrailingData
	MalformedLength
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case NotANumber:
		return "not a number"
	case UnknownType:
		return "unknown type"
	case BadSyntax:
		return "bad syntax"
	case TrailingData:
		return "trailing data"
	case MalformedLength:
		return "malformed length"
	}
	return "unknown error kind"
}

// Error is a codec error.  Located is set for errors raised by the parser,
// which also fill in Offset, the byte offset into the input, Remainder, a
// (possibly truncated) copy of the unparsed input, and Partial, a
// (possibly truncated) rendering of the values accumulated so far in the
// enclosing group.  Remainder is empty when the input ran out.
type Error struct {
	Kind      Kind
	Err       error
	Located   bool
	Offset    int
	Remainder string
	Partial   string
}

func pad(b *bytes.Buffer, s string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(s)
}

func (e *Error) Error() string {
	b := &bytes.Buffer{}
	if e.Kind != Other {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(b, ": ")
		b.WriteString(e.Err.Error())
	}
	if e.Located {
		fmt.Fprintf(b, " (offset %d, remainder %q, partial %s)", e.Offset, e.Remainder, e.Partial)
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns just the Err.Error() string, if present, or the Kind
// string description.
func (e *Error) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != Other {
		return e.Kind.String()
	}
	return "no error"
}

// E generates an error from any mix of:
// - a Kind
// - an existing error
// - a string and optional formatting verbs, like fmt.Errorf (including support
//	for the `%w` verb).
//
// The string & format verbs must be last in the arguments, if present.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args to bonerr.E")
	}
	e := &Error{}
	for i, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case string:
			e.Err = fmt.Errorf(arg, args[i+1:]...)
			return e
		default:
			_, file, line, _ := runtime.Caller(1)
			return fmt.Errorf("unknown type %T value %v in bonerr.E call at %v:%v", arg, arg, file, line)
		}
	}
	return e
}

// Ef returns an error of kind k with a message formatted as by fmt.Errorf.
// Unlike E, it takes the format arguments as a slice, so callers holding
// variadic arguments of their own can pass them on.
func Ef(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain or Other.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Is reports whether err is a codec error of kind k.
func Is(k Kind, err error) bool {
	return err != nil && KindOf(err) == k
}

func IsNotANumber(err error) bool      { return Is(NotANumber, err) }
func IsUnknownType(err error) bool     { return Is(UnknownType, err) }
func IsBadSyntax(err error) bool       { return Is(BadSyntax, err) }
func IsTrailingData(err error) bool    { return Is(TrailingData, err) }
func IsMalformedLength(err error) bool { return Is(MalformedLength, err) }
