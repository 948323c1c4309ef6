package bon

// Set is a collection of unique values.  Membership is decided by Equal.
// Iteration follows insertion order, which carries no meaning.  The nil
// *Set is an empty set.
type Set struct {
	vals  []Value
	index map[uint64][]int
}

func (*Set) bonValue() {}

// NewSet returns a set holding vals with duplicates removed.
func NewSet(vals ...Value) *Set {
	s := &Set{index: make(map[uint64][]int, len(vals))}
	for _, v := range vals {
		s.add(v)
	}
	return s
}

func (s *Set) add(val Value) {
	h := Hash(val)
	for _, k := range s.index[h] {
		if Equal(s.vals[k], val) {
			return
		}
	}
	s.index[h] = append(s.index[h], len(s.vals))
	s.vals = append(s.vals, val)
}

func (s *Set) Has(val Value) bool {
	if s == nil {
		return false
	}
	for _, k := range s.index[Hash(val)] {
		if Equal(s.vals[k], val) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vals)
}

// Values returns a copy of the elements of s in insertion order.
func (s *Set) Values() []Value {
	if s == nil {
		return nil
	}
	return append([]Value(nil), s.vals...)
}

// With returns a new set holding the elements of s plus val.
func (s *Set) With(val Value) *Set {
	out := NewSet(s.Values()...)
	out.add(val)
	return out
}

func (s *Set) String() string {
	return formatSet(s)
}
