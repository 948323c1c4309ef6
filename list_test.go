package bon_test

import (
	"testing"

	"github.com/brimdata/bon"
	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	l := bon.NewList(bon.Int(1), bon.Int(2), bon.Int(3))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, bon.Int(1), l.Head())
	assert.Equal(t, []bon.Value{bon.Int(2), bon.Int(3)}, l.Tail().Values())
	assert.Equal(t, []bon.Value{bon.Int(3), bon.Int(2), bon.Int(1)}, l.Reverse().Values())

	var empty *bon.List
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Head())
	assert.Nil(t, empty.Tail())
	assert.Empty(t, empty.Values())
}

func TestListSharing(t *testing.T) {
	tail := bon.NewList(bon.Int(2), bon.Int(3))
	a := tail.Prepend(bon.Int(1))
	b := tail.Prepend(bon.Int(0))
	assert.Same(t, a.Tail(), b.Tail())
	assert.Equal(t, 2, tail.Len())
	assert.Equal(t, 3, a.Len())
}

func TestListWalk(t *testing.T) {
	var seen []bon.Value
	bon.NewList(bon.Int(1), bon.Int(2), bon.Int(3)).Walk(func(v bon.Value) bool {
		seen = append(seen, v)
		return v != bon.Int(2)
	})
	assert.Equal(t, []bon.Value{bon.Int(1), bon.Int(2)}, seen)
}

func TestListArrayConversions(t *testing.T) {
	a := bon.Array{bon.Int(65), bon.Int(0), bon.Int(66)}
	l := bon.ArrayToList(a)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, a, bon.ListToArray(l))
	assert.Equal(t, bon.Array{}, bon.ListToArray(bon.Empty))
}

func TestLongList(t *testing.T) {
	var l *bon.List
	for k := 0; k < 1000000; k++ {
		l = l.Prepend(bon.Int(k))
	}
	assert.Equal(t, 1000000, l.Len())
	assert.True(t, bon.Equal(l, bon.ListToArray(l)))
}
