package bon

import "bytes"

// Equal reports whether a and b are structurally equal.  Values of
// different kinds are unequal except that an Array equals a *List holding
// the same elements in order and an Object equals a *Map holding the same
// entries under String keys.  Equal is symmetric: every cross-kind case
// normalizes its arguments before comparing.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case Float:
		b, ok := b.(Float)
		return ok && a.f == b.f
	case Atom:
		b, ok := b.(Atom)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Binary:
		b, ok := b.(Binary)
		return ok && bytes.Equal(a.b, b.b)
	case Tuple:
		b, ok := b.(Tuple)
		return ok && equalSlices(a.fields, b.fields)
	case Array:
		switch b := b.(type) {
		case Array:
			return equalSlices(a, b)
		case *List:
			return equalArrayList(a, b)
		}
	case *List:
		switch b := b.(type) {
		case *List:
			return equalLists(a, b)
		case Array:
			return equalArrayList(b, a)
		}
	case Object:
		switch b := b.(type) {
		case Object:
			return equalObjects(a, b)
		case *Map:
			return equalObjectMap(a, b)
		}
	case *Map:
		switch b := b.(type) {
		case *Map:
			return equalMaps(a, b)
		case Object:
			return equalObjectMap(b, a)
		}
	case *Set:
		b, ok := b.(*Set)
		return ok && equalSets(a, b)
	}
	return false
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !Equal(a[k], b[k]) {
			return false
		}
	}
	return true
}

func equalArrayList(a Array, l *List) bool {
	if len(a) != l.Len() {
		return false
	}
	for _, v := range a {
		if !Equal(v, l.head) {
			return false
		}
		l = l.tail
	}
	return true
}

func equalLists(a, b *List) bool {
	if a.Len() != b.Len() {
		return false
	}
	for ; a != b; a, b = a.tail, b.tail {
		if !Equal(a.head, b.head) {
			return false
		}
	}
	return true
}

func equalObjects(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func equalObjectMap(o Object, m *Map) bool {
	if len(o) != m.Len() {
		return false
	}
	for k, ov := range o {
		mv, ok := m.Get(String(k))
		if !ok || !Equal(ov, mv) {
			return false
		}
	}
	return true
}

func equalMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, e := range a.Entries() {
		bv, ok := b.Get(e.Key)
		if !ok || !Equal(e.Value, bv) {
			return false
		}
	}
	return true
}

func equalSets(a, b *Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, v := range a.Values() {
		if !b.Has(v) {
			return false
		}
	}
	return true
}
