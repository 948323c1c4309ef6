package codec

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/agnivade/levenshtein"
	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/brimdata/bon/ratio"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the bracket nesting limit used when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 10000

// maxRemainder bounds the copy of the unparsed input carried by errors.
const maxRemainder = 32

// maxPartial bounds the number of group values and the length of their
// rendering carried by errors.
const maxPartial = 8

type Options struct {
	// Lists makes "l" groups decode as *bon.List rather than bon.Array.
	Lists bool
	// MaxDepth bounds the nesting of bracketed groups.
	MaxDepth int
	// MaxInput bounds the size of an input in bytes.  Zero means no limit.
	MaxInput int
	Logger   *zap.Logger
}

// Decoder decodes BON inputs with a fixed set of Options.  A Decoder holds
// no state between calls and is safe for concurrent use.
type Decoder struct {
	opts   Options
	logger *zap.Logger
}

func NewDecoder(opts Options) *Decoder {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{opts: opts, logger: logger}
}

var defaultDecoder = NewDecoder(Options{})

// Decode decodes the single value held by b using default Options.
func Decode(b []byte) (bon.Value, error) {
	return defaultDecoder.Decode(b)
}

// DecodeAll decodes the back-to-back values held by b using default
// Options.
func DecodeAll(b []byte) ([]bon.Value, error) {
	return defaultDecoder.DecodeAll(b)
}

// Decode decodes the single value held by b.  Spaces may surround the
// value.  Any other bytes after it are a bonerr.TrailingData error and an
// input holding no value is a bonerr.BadSyntax error.
func (d *Decoder) Decode(b []byte) (bon.Value, error) {
	p, err := d.NewParser(b)
	if err != nil {
		return nil, err
	}
	v, err := p.Next()
	if err == io.EOF {
		err = p.errorf(bonerr.BadSyntax, nil, "no value in input")
	}
	if err != nil {
		d.reject(b, err)
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.buf) {
		err := p.errorf(bonerr.TrailingData, bon.NewList(v), "%d bytes follow the value", len(p.buf)-p.pos)
		d.reject(b, err)
		return nil, err
	}
	return v, nil
}

// DecodeAll decodes the back-to-back values held by b in order.
func (d *Decoder) DecodeAll(b []byte) ([]bon.Value, error) {
	p, err := d.NewParser(b)
	if err != nil {
		return nil, err
	}
	var vals []bon.Value
	for {
		v, err := p.Next()
		if err == io.EOF {
			return vals, nil
		}
		if err != nil {
			d.reject(b, err)
			return nil, err
		}
		vals = append(vals, v)
	}
}

// NewParser returns a Parser over b.
func (d *Decoder) NewParser(b []byte) (*Parser, error) {
	if d.opts.MaxInput > 0 && len(b) > d.opts.MaxInput {
		err := bonerr.E(bonerr.BadSyntax, "input of %d bytes exceeds the limit of %d bytes", len(b), d.opts.MaxInput)
		d.reject(b, err)
		return nil, err
	}
	return &Parser{buf: b, opts: d.opts}, nil
}

func (d *Decoder) reject(b []byte, err error) {
	d.logger.Debug("Rejected BON input", zap.Int("size", len(b)), zap.Error(err))
}

// Parser decodes top-level values one at a time from an input buffer.
// Binary values are copied out of the buffer; the buffer is not retained
// by decoded values.
type Parser struct {
	buf   []byte
	pos   int
	depth int
	opts  Options
}

// Next returns the next top-level value or io.EOF when only spaces remain.
func (p *Parser) Next() (bon.Value, error) {
	p.skipSpace()
	if p.pos >= len(p.buf) {
		return nil, io.EOF
	}
	return p.value(nil)
}

// Offset returns the offset of the first unparsed byte.
func (p *Parser) Offset() int {
	return p.pos
}

// Remaining returns the unparsed input.
func (p *Parser) Remaining() []byte {
	return p.buf[p.pos:]
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.buf) && p.buf[p.pos] == space {
		p.pos++
	}
}

// value parses the value starting at the current byte.  acc holds the
// values already accumulated in the enclosing group and is used only for
// diagnostics.
func (p *Parser) value(acc *bon.List) (bon.Value, error) {
	c := p.buf[p.pos]
	rest := p.buf[p.pos:]
	switch {
	case isDigit(c), c == minus && len(rest) > 1 && isDigit(rest[1]):
		return p.number(acc)
	case bytes.HasPrefix(rest, atomPrefix):
		name, err := p.sized(acc)
		if err != nil {
			return nil, err
		}
		return bon.NewAtom(string(name)), nil
	case bytes.HasPrefix(rest, binaryPrefix):
		payload, err := p.sized(acc)
		if err != nil {
			return nil, err
		}
		return bon.NewBinary(payload), nil
	case c == openBracket:
		return p.group(acc)
	case isAlpha(c):
		start := p.pos
		word := p.word()
		return nil, p.errorAt(start, bonerr.BadSyntax, acc, "terminator word %q outside of a group", word)
	case c == doubleQuote:
		s, n, err := bon.ScanQuotedString(rest[1:])
		if err != nil {
			return nil, p.errorAt(p.pos, bonerr.BadSyntax, acc, "%s", err)
		}
		p.pos += 1 + n
		return bon.String(s), nil
	}
	return nil, p.errorf(bonerr.BadSyntax, acc, "unexpected byte %q", c)
}

// number parses -?digits(/digits)?.  Only the first slash is taken as a
// denominator.  An integer beyond the int64 range becomes the nearest
// Float.
func (p *Parser) number(acc *bon.List) (bon.Value, error) {
	start := p.pos
	if p.buf[p.pos] == minus {
		p.pos++
	}
	p.digits()
	numText := p.buf[start:p.pos]
	if p.pos+1 < len(p.buf) && p.buf[p.pos] == slash && isDigit(p.buf[p.pos+1]) {
		p.pos++
		denText := p.digits()
		f, err := ratio.FromFraction(bigInt(numText), bigInt(denText))
		if err != nil {
			return nil, p.wrap(start, acc, err)
		}
		return bon.NewFloat(f)
	}
	if n, err := strconv.ParseInt(string(numText), 10, 64); err == nil {
		return bon.Int(n), nil
	}
	f, err := ratio.FromInt(bigInt(numText))
	if err != nil {
		return nil, p.wrap(start, acc, err)
	}
	return bon.NewFloat(f)
}

func (p *Parser) digits() []byte {
	start := p.pos
	for p.pos < len(p.buf) && isDigit(p.buf[p.pos]) {
		p.pos++
	}
	return p.buf[start:p.pos]
}

func bigInt(text []byte) *big.Int {
	n, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		panic(fmt.Sprintf("codec: bad integer %q", text))
	}
	return n
}

// sized parses the length-prefixed payload of an atom or binary, starting
// at its 'a: or 'b: prefix, and returns the payload bytes.
func (p *Parser) sized(acc *bon.List) ([]byte, error) {
	start := p.pos
	p.pos += len(atomPrefix)
	lenText := p.digits()
	if len(lenText) == 0 {
		return nil, p.errorAt(start, bonerr.MalformedLength, acc, "missing length field")
	}
	n, err := strconv.Atoi(string(lenText))
	if err != nil || n > math.MaxInt32 {
		return nil, p.errorAt(start, bonerr.MalformedLength, acc, "length field %s out of range", lenText)
	}
	if p.pos >= len(p.buf) || p.buf[p.pos] != colon {
		return nil, p.errorAt(start, bonerr.MalformedLength, acc, "expected ':' after length field")
	}
	p.pos++
	if avail := len(p.buf) - p.pos; n > avail {
		return nil, p.errorAt(start, bonerr.MalformedLength, acc, "declared length %d exceeds the %d bytes available", n, avail)
	}
	payload := p.buf[p.pos : p.pos+n]
	p.pos += n
	if p.pos >= len(p.buf) || p.buf[p.pos] != quote {
		return nil, p.errorAt(start, bonerr.MalformedLength, acc, "expected closing quote after %d bytes", n)
	}
	p.pos++
	return payload, nil
}

// group parses a bracketed group starting at its open bracket and
// constructs the container named by its terminator word.
func (p *Parser) group(acc *bon.List) (bon.Value, error) {
	start := p.pos
	if p.depth >= p.opts.MaxDepth {
		return nil, p.errorAt(start, bonerr.BadSyntax, acc, "groups nested deeper than %d", p.opts.MaxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()
	p.pos++
	word, children, err := p.children()
	if err != nil {
		return nil, err
	}
	switch word {
	case WordTuple:
		return bon.NewTuple(children.Values()...), nil
	case WordList:
		if p.opts.Lists {
			return children, nil
		}
		return bon.ListToArray(children), nil
	case WordSet:
		return bon.NewSet(children.Values()...), nil
	case WordMap:
		if children.Len()%2 != 0 {
			return nil, p.errorAt(start, bonerr.BadSyntax, children, "map group with an odd number (%d) of children", children.Len())
		}
		return listToMap(children), nil
	}
	return nil, p.errorAt(start, bonerr.BadSyntax, children, "unknown terminator word %q (did you mean %q?)", word, suggest(word))
}

// children accumulates the values of a group, whose open bracket has been
// consumed, up to and including its terminator word.  Each value is
// prepended, so the accumulated list is in the reverse of byte order.
func (p *Parser) children() (string, *bon.List, error) {
	var acc *bon.List
	for {
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return "", nil, p.errorf(bonerr.BadSyntax, acc, "end of input inside a group")
		}
		if isAlpha(p.buf[p.pos]) {
			return p.word(), acc, nil
		}
		v, err := p.value(acc)
		if err != nil {
			return "", nil, err
		}
		acc = acc.Prepend(v)
	}
}

func (p *Parser) word() string {
	start := p.pos
	for p.pos < len(p.buf) && isWordBody(p.buf[p.pos]) {
		p.pos++
	}
	return string(p.buf[start:p.pos])
}

// listToMap reads children as alternating key, value pairs.  The last
// value wins for a repeated key.
func listToMap(children *bon.List) *bon.Map {
	entries := make([]bon.Entry, 0, children.Len()/2)
	for l := children; !l.IsEmpty(); l = l.Tail().Tail() {
		entries = append(entries, bon.Entry{Key: l.Head(), Value: l.Tail().Head()})
	}
	return bon.NewMap(entries...)
}

var words = []string{WordTuple, WordList, WordSet, WordMap}

func suggest(word string) string {
	best, dist := words[0], math.MaxInt
	for _, w := range words {
		if d := levenshtein.ComputeDistance(word, w); d < dist {
			best, dist = w, d
		}
	}
	return best
}

func (p *Parser) errorf(kind bonerr.Kind, acc *bon.List, format string, args ...interface{}) error {
	return p.errorAt(p.pos, kind, acc, format, args...)
}

func (p *Parser) errorAt(off int, kind bonerr.Kind, acc *bon.List, format string, args ...interface{}) error {
	return p.wrap(off, acc, bonerr.Ef(kind, format, args...))
}

// wrap attaches the parser state at offset off to a codec error.
func (p *Parser) wrap(off int, acc *bon.List, err error) error {
	e, ok := err.(*bonerr.Error)
	if !ok {
		e = &bonerr.Error{Kind: bonerr.BadSyntax, Err: err}
	}
	rest := p.buf[off:]
	if len(rest) > maxRemainder {
		rest = rest[:maxRemainder]
	}
	e.Located = true
	e.Offset = off
	e.Remainder = string(rest)
	e.Partial = partial(acc)
	return e
}

// partial renders at most maxPartial values of acc.  A rendering cut short
// ends in "...".
func partial(acc *bon.List) string {
	head := make([]bon.Value, 0, maxPartial)
	acc.Walk(func(v bon.Value) bool {
		head = append(head, v)
		return len(head) < maxPartial
	})
	s := bon.Format(bon.NewList(head...))
	if acc.Len() > len(head) {
		s = s[:len(s)-1] + ",...]"
	}
	if len(s) > maxPartial*maxRemainder {
		s = s[:maxPartial*maxRemainder] + "..."
	}
	return s
}
