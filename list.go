package bon

// List is a persistent singly-linked list.  The nil *List is the empty list
// and every method is valid on it.  Lists share structure: Prepend never
// copies the receiver, so a list may be the tail of any number of others.
type List struct {
	head Value
	tail *List
	n    int
}

// Empty is the empty list.
var Empty *List

func (*List) bonValue() {}

// NewList returns a list holding vals in order.
func NewList(vals ...Value) *List {
	var l *List
	for k := len(vals) - 1; k >= 0; k-- {
		l = l.Prepend(vals[k])
	}
	return l
}

// Prepend returns a new list with v in front of l.
func (l *List) Prepend(v Value) *List {
	return &List{head: v, tail: l, n: l.Len() + 1}
}

func (l *List) IsEmpty() bool {
	return l == nil
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Head returns the first element of l or nil if l is empty.
func (l *List) Head() Value {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns l without its first element.  The tail of the empty list is
// the empty list.
func (l *List) Tail() *List {
	if l == nil {
		return nil
	}
	return l.tail
}

// Values returns the elements of l as a slice.
func (l *List) Values() []Value {
	vals := make([]Value, 0, l.Len())
	for ; l != nil; l = l.tail {
		vals = append(vals, l.head)
	}
	return vals
}

// Reverse returns a new list holding the elements of l in reverse order.
func (l *List) Reverse() *List {
	var out *List
	for ; l != nil; l = l.tail {
		out = out.Prepend(l.head)
	}
	return out
}

// Walk calls fn on each element in order until fn returns false.
func (l *List) Walk(fn func(Value) bool) {
	for ; l != nil; l = l.tail {
		if !fn(l.head) {
			return
		}
	}
}

func (l *List) String() string {
	return formatList(l)
}

// ArrayToList returns the elements of a as a persistent list.
func ArrayToList(a Array) *List {
	return NewList(a...)
}

// ListToArray returns the elements of l as a native array.
func ListToArray(l *List) Array {
	return Array(l.Values())
}
