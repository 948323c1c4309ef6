package bon

import "bytes"

// Binary is an immutable byte sequence.
type Binary struct {
	b []byte
}

func (Binary) bonValue() {}

// NewBinary returns a Binary holding a copy of b.
func NewBinary(b []byte) Binary {
	return Binary{bytes.Clone(b)}
}

// Bytes returns the underlying bytes, which must not be modified.
func (b Binary) Bytes() []byte {
	return b.b
}

func (b Binary) Len() int {
	return len(b.b)
}

func (b Binary) String() string {
	return formatBinary(b)
}
