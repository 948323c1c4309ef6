// Package iolist implements a byte accumulator that grows at the front.
//
// Serializers that walk a container and place each encoded child in front
// of the children already encoded would pay for a copy at every step if
// they concatenated byte slices.  A Builder instead records chunks and
// spliced sub-builders in O(1) and concatenates everything in one pass
// when Bytes or WriteTo is called.
package iolist

import "io"

type part struct {
	chunk []byte
	sub   *Builder
}

// Builder accumulates bytes by prepending.  The zero Builder is empty and
// ready to use.  A Builder that has been prepended to another Builder must
// not be modified afterwards.
type Builder struct {
	// parts is kept in reverse logical order: the last part is the first
	// one in the output.
	parts []part
	n     int
}

var single = func() (t [256][1]byte) {
	for c := range t {
		t[c][0] = byte(c)
	}
	return
}()

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Reset resets the Builder to be empty.
func (b *Builder) Reset() {
	b.parts = b.parts[:0]
	b.n = 0
}

// Len returns the number of bytes the Builder will produce.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// PrependByte places c in front of the current contents.
func (b *Builder) PrependByte(c byte) {
	b.parts = append(b.parts, part{chunk: single[c][:]})
	b.n++
}

// PrependBytes places chunk in front of the current contents.  The chunk is
// referenced, not copied, and must not be modified afterwards.
func (b *Builder) PrependBytes(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	b.parts = append(b.parts, part{chunk: chunk})
	b.n += len(chunk)
}

// PrependString places s in front of the current contents.
func (b *Builder) PrependString(s string) {
	b.PrependBytes([]byte(s))
}

// Prepend splices other in front of the current contents without copying
// it.
func (b *Builder) Prepend(other *Builder) {
	if other.Len() == 0 {
		return
	}
	b.parts = append(b.parts, part{sub: other})
	b.n += other.n
}

// Bytes returns the accumulated bytes as one freshly allocated slice.
// It may be called any number of times.
func (b *Builder) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	b.walk(func(chunk []byte) error {
		out = append(out, chunk...)
		return nil
	})
	return out
}

// WriteTo writes the accumulated bytes to w in order without first
// concatenating them.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	err := b.walk(func(chunk []byte) error {
		cc, err := w.Write(chunk)
		n += int64(cc)
		return err
	})
	return n, err
}

func (b *Builder) String() string {
	return string(b.Bytes())
}

// walk visits each chunk in logical order.  Spliced builders are walked
// with an explicit stack so that deep splicing cannot exhaust the
// goroutine stack.
func (b *Builder) walk(fn func([]byte) error) error {
	if b.Len() == 0 {
		return nil
	}
	type frame struct {
		b    *Builder
		next int
	}
	stack := []frame{{b, len(b.parts) - 1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		p := top.b.parts[top.next]
		top.next--
		if p.sub != nil {
			stack = append(stack, frame{p.sub, len(p.sub.parts) - 1})
			continue
		}
		if err := fn(p.chunk); err != nil {
			return err
		}
	}
	return nil
}
