package bon

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Object is a native string-keyed record.  An Object is Equal to a *Map
// holding the same key/value pairs with String keys.
type Object map[string]Value

func (Object) bonValue() {}

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string {
	keys := maps.Keys(o)
	slices.Sort(keys)
	return keys
}

// ToMap returns the entries of o as a *Map keyed by String.
func (o Object) ToMap() *Map {
	entries := make([]Entry, 0, len(o))
	for _, k := range o.Keys() {
		entries = append(entries, Entry{String(k), o[k]})
	}
	return NewMap(entries...)
}

func (o Object) String() string {
	return formatObject(o)
}
