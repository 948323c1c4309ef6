package bon

// Tuple is a fixed-length sequence of heterogeneous values.
type Tuple struct {
	fields []Value
}

func (Tuple) bonValue() {}

// NewTuple returns a tuple of the given fields.  The argument slice is
// copied.
func NewTuple(fields ...Value) Tuple {
	if len(fields) == 0 {
		return Tuple{}
	}
	return Tuple{append([]Value(nil), fields...)}
}

func (t Tuple) Len() int {
	return len(t.fields)
}

func (t Tuple) Field(i int) (Value, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, ErrIndex
	}
	return t.fields[i], nil
}

// Fields returns a copy of the fields of t.
func (t Tuple) Fields() []Value {
	return append([]Value(nil), t.fields...)
}

func (t Tuple) String() string {
	return formatTuple(t)
}

// TupleToList returns the fields of t as a persistent list.
func TupleToList(t Tuple) *List {
	return NewList(t.fields...)
}
