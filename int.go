package bon

import "strconv"

// Int is a signed whole number.
type Int int64

func (Int) bonValue() {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}
