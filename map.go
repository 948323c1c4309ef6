package bon

// Entry is a key/value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is a mapping from arbitrary keys to values.  Keys are compared with
// Equal and located through Hash.  Iteration follows insertion order, which
// carries no meaning.  The nil *Map is an empty map.
type Map struct {
	entries []Entry
	index   map[uint64][]int
}

func (*Map) bonValue() {}

// NewMap returns a map holding entries.  When a key appears more than once,
// the last value wins.
func NewMap(entries ...Entry) *Map {
	m := &Map{index: make(map[uint64][]int, len(entries))}
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return m
}

func (m *Map) put(key, val Value) {
	h := Hash(key)
	for _, k := range m.index[h] {
		if Equal(m.entries[k].Key, key) {
			m.entries[k].Value = val
			return
		}
	}
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, Entry{key, val})
}

func (m *Map) lookup(key Value) int {
	if m == nil {
		return -1
	}
	for _, k := range m.index[Hash(key)] {
		if Equal(m.entries[k].Key, key) {
			return k
		}
	}
	return -1
}

// Get returns the value stored under key.
func (m *Map) Get(key Value) (Value, bool) {
	if k := m.lookup(key); k >= 0 {
		return m.entries[k].Value, true
	}
	return nil, false
}

func (m *Map) Has(key Value) bool {
	return m.lookup(key) >= 0
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries of m in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key, val Value) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// With returns a new map holding the entries of m plus key/val.
func (m *Map) With(key, val Value) *Map {
	out := NewMap(m.Entries()...)
	out.put(key, val)
	return out
}

func (m *Map) String() string {
	return formatMap(m)
}
