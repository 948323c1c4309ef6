// Package bon implements the value model of the BON encoding: integers,
// rational floats, interned atoms, strings, binaries, tuples, persistent
// lists, native arrays and objects, maps and sets.  The encoding itself
// lives in package codec.
package bon

import (
	"errors"
)

var (
	ErrNotContainer = errors.New("expected container value")
	ErrIndex        = errors.New("index out of bounds")
)

// Value is a BON value.  The set of implementations is closed: Int, Float,
// Atom, String, Binary, Tuple, *List, Array, Object, *Map and *Set.
type Value interface {
	bonValue()
}

type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindAtom
	KindString
	KindBinary
	KindTuple
	KindList
	KindArray
	KindObject
	KindMap
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindAtom:
		return "atom"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	}
	return "invalid"
}

// IsContainer returns true for kinds whose values hold other values.
func (k Kind) IsContainer() bool {
	return k >= KindTuple
}

// KindOf returns the kind of v.  A nil Value has kind KindInvalid.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Int:
		return KindInt
	case Float:
		return KindFloat
	case Atom:
		return KindAtom
	case String:
		return KindString
	case Binary:
		return KindBinary
	case Tuple:
		return KindTuple
	case *List:
		return KindList
	case Array:
		return KindArray
	case Object:
		return KindObject
	case *Map:
		return KindMap
	case *Set:
		return KindSet
	}
	return KindInvalid
}

// Len returns the number of elements, fields or entries held by a container
// value.  It returns ErrNotContainer for other values.
func Len(v Value) (int, error) {
	switch v := v.(type) {
	case Tuple:
		return v.Len(), nil
	case *List:
		return v.Len(), nil
	case Array:
		return len(v), nil
	case Object:
		return len(v), nil
	case *Map:
		return v.Len(), nil
	case *Set:
		return v.Len(), nil
	}
	return 0, ErrNotContainer
}
