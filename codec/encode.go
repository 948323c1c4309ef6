// Package codec implements the BON encoding of bon values.
//
// Scalars are written as
//
//	int     " 42 ", " -72 "
//	float   " 3/2 ", or " 42 " when the reduced denominator is 1
//	atom    'a:4:atom'
//	binary  'b:4:text'
//	string  "text"
//
// and containers as an open bracket, the encoded children in reverse
// order, and a terminator word naming the kind:
//
//	tuple   [children t
//	list    [children l     (also arrays)
//	set     [children s
//	map     [children m     (also objects; each pair is value then key)
//
// There is no closing bracket.  The serializer builds each group by
// prepending children as it walks them, which yields the reverse order
// without an explicit reversal, and the parser accumulates children by
// prepending as well, so the two reversals cancel.
package codec

import (
	"math/big"
	"strconv"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/brimdata/bon/iolist"
	"github.com/brimdata/bon/ratio"
)

var one = big.NewInt(1)

// Encode returns the BON encoding of v.
func Encode(v bon.Value) ([]byte, error) {
	b, err := Serialize(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Serialize returns an iolist.Builder holding the BON encoding of v.
func Serialize(v bon.Value) (*iolist.Builder, error) {
	switch v := v.(type) {
	case bon.Int:
		return framed(strconv.AppendInt(nil, int64(v), 10)), nil
	case bon.Float:
		num, den, err := ratio.ToFraction(v.Float64())
		if err != nil {
			return nil, err
		}
		text := num.Append(nil, 10)
		if den.Cmp(one) != 0 {
			text = append(text, slash)
			text = den.Append(text, 10)
		}
		return framed(text), nil
	case bon.Atom:
		return sized('a', []byte(v.Name())), nil
	case bon.Binary:
		return sized('b', v.Bytes()), nil
	case bon.String:
		b := iolist.New()
		b.PrependBytes(bon.AppendQuotedString(nil, string(v)))
		return b, nil
	case bon.Tuple:
		return serializeSlice(v.Fields(), WordTuple)
	case *bon.List:
		children := iolist.New()
		for l := v; !l.IsEmpty(); l = l.Tail() {
			child, err := Serialize(l.Head())
			if err != nil {
				return nil, err
			}
			children.Prepend(child)
		}
		return group(children, WordList), nil
	case bon.Array:
		return serializeSlice(v, WordList)
	case *bon.Set:
		return serializeSlice(v.Values(), WordSet)
	case *bon.Map:
		children := iolist.New()
		for _, e := range v.Entries() {
			if err := prependPair(children, e.Key, e.Value); err != nil {
				return nil, err
			}
		}
		return group(children, WordMap), nil
	case bon.Object:
		children := iolist.New()
		for _, key := range v.Keys() {
			if err := prependPair(children, bon.String(key), v[key]); err != nil {
				return nil, err
			}
		}
		return group(children, WordMap), nil
	}
	return nil, bonerr.E(bonerr.UnknownType, "cannot serialize %T", v)
}

func serializeSlice(vals []bon.Value, word string) (*iolist.Builder, error) {
	children := iolist.New()
	for _, v := range vals {
		child, err := Serialize(v)
		if err != nil {
			return nil, err
		}
		children.Prepend(child)
	}
	return group(children, word), nil
}

// prependPair places the encoded value and then the encoded key in front
// of children.
func prependPair(children *iolist.Builder, key, val bon.Value) error {
	k, err := Serialize(key)
	if err != nil {
		return err
	}
	v, err := Serialize(val)
	if err != nil {
		return err
	}
	children.Prepend(k)
	children.Prepend(v)
	return nil
}

func group(children *iolist.Builder, word string) *iolist.Builder {
	b := iolist.New()
	b.PrependString(" " + word + " ")
	b.Prepend(children)
	b.PrependByte(openBracket)
	return b
}

func framed(text []byte) *iolist.Builder {
	b := iolist.New()
	b.PrependByte(space)
	b.PrependBytes(text)
	b.PrependByte(space)
	return b
}

// sized returns 'tag:len:payload'.
func sized(tag byte, payload []byte) *iolist.Builder {
	head := []byte{quote, tag, colon}
	head = strconv.AppendInt(head, int64(len(payload)), 10)
	head = append(head, colon)
	b := iolist.New()
	b.PrependByte(quote)
	b.PrependBytes(payload)
	b.PrependBytes(head)
	return b
}
