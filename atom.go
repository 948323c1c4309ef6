package bon

import "sync"

// Atom is an interned symbolic name.  Two atoms with the same text are the
// same value: equality is a comparison of intern table identifiers.
type Atom struct {
	id uint32
}

func (Atom) bonValue() {}

// atomTable maps names to stable identifiers.  Entries are added on first
// use and never evicted.
type atomTable struct {
	mu    sync.RWMutex
	ids   map[string]uint32
	names []string
}

// Identifier zero is the empty name so the zero Atom is valid.
var atoms = &atomTable{
	ids:   map[string]uint32{"": 0},
	names: []string{""},
}

func (t *atomTable) intern(name string) uint32 {
	t.mu.RLock()
	id, ok := t.ids[name]
	t.mu.RUnlock()
	if ok {
		return id
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	id = uint32(len(t.names))
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

func (t *atomTable) name(id uint32) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.names[id]
}

// NewAtom returns the atom named name, interning it if necessary.
func NewAtom(name string) Atom {
	return Atom{atoms.intern(name)}
}

// Name returns the text of the atom.  The zero Atom is the empty name.
func (a Atom) Name() string {
	return atoms.name(a.id)
}

func (a Atom) String() string {
	return formatAtom(a)
}
