package bon

// Array is a native sequence of values.  An Array is Equal to a *List
// holding the same elements in the same order.
type Array []Value

func (Array) bonValue() {}

func (a Array) String() string {
	return formatArray(a)
}
