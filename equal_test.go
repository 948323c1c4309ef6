package bon_test

import (
	"math"
	"testing"

	"github.com/brimdata/bon"
	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	atom := bon.NewAtom
	cases := []struct {
		name  string
		a, b  bon.Value
		equal bool
	}{
		{"int", bon.Int(42), bon.Int(42), true},
		{"int/differs", bon.Int(42), bon.Int(-72), false},
		{"int/float", bon.Int(42), bon.MustFloat(42), false},
		{"float", bon.MustFloat(3.14), bon.MustFloat(3.14), true},
		{"float/zero", bon.MustFloat(0), bon.MustFloat(math.Copysign(0, -1)), true},
		{"atom", atom("ok"), atom("ok"), true},
		{"atom/string", atom("ok"), bon.String("ok"), false},
		{"string", bon.String("AB"), bon.String("AB"), true},
		{"binary", bon.NewBinary([]byte("text")), bon.NewBinary([]byte("text")), true},
		{"binary/string", bon.NewBinary([]byte("text")), bon.String("text"), false},
		{"tuple", bon.NewTuple(atom("a"), bon.Int(1)), bon.NewTuple(atom("a"), bon.Int(1)), true},
		{"tuple/arity", bon.NewTuple(atom("a")), bon.NewTuple(atom("a"), bon.Int(1)), false},
		{"tuple/array", bon.NewTuple(bon.Int(1)), bon.Array{bon.Int(1)}, false},
		{
			"array/list",
			bon.Array{bon.Int(1), bon.Int(2), bon.Int(3)},
			bon.Empty.Prepend(bon.Int(3)).Prepend(bon.Int(2)).Prepend(bon.Int(1)),
			true,
		},
		{"array/list/short", bon.Array{bon.Int(1), bon.Int(2)}, bon.NewList(bon.Int(1)), false},
		{"array/list/long", bon.Array{bon.Int(1)}, bon.NewList(bon.Int(1), bon.Int(2)), false},
		{"array/list/order", bon.Array{bon.Int(1), bon.Int(2)}, bon.NewList(bon.Int(2), bon.Int(1)), false},
		{"list/list/length", bon.NewList(bon.Int(1)), bon.NewList(bon.Int(1), bon.Int(1)), false},
		{"list/empty", bon.Empty, bon.NewList(), true},
		{"array/empty-list", bon.Array{}, bon.Empty, true},
		{
			"object/map",
			bon.Object{"a": bon.Int(1)},
			bon.NewMap(bon.Entry{Key: bon.String("a"), Value: bon.Int(1)}),
			true,
		},
		{
			"object/map/atom-key",
			bon.Object{"a": bon.Int(1)},
			bon.NewMap(bon.Entry{Key: atom("a"), Value: bon.Int(1)}),
			false,
		},
		{
			"object/map/value",
			bon.Object{"a": bon.Int(1)},
			bon.NewMap(bon.Entry{Key: bon.String("a"), Value: bon.Int(2)}),
			false,
		},
		{"object/object", bon.Object{"a": bon.Int(1)}, bon.Object{"a": bon.Int(1)}, true},
		{"object/object/key", bon.Object{"a": bon.Int(1)}, bon.Object{"b": bon.Int(1)}, false},
		{
			"map/order",
			bon.NewMap(bon.Entry{Key: bon.Int(1), Value: atom("x")}, bon.Entry{Key: bon.Int(2), Value: atom("y")}),
			bon.NewMap(bon.Entry{Key: bon.Int(2), Value: atom("y")}, bon.Entry{Key: bon.Int(1), Value: atom("x")}),
			true,
		},
		{"map/size", bon.NewMap(bon.Entry{Key: bon.Int(1), Value: bon.Int(1)}), bon.NewMap(), false},
		{"set/order", bon.NewSet(bon.Int(1), bon.Int(2), bon.Int(3)), bon.NewSet(bon.Int(3), bon.Int(1), bon.Int(2)), true},
		{"set/members", bon.NewSet(bon.Int(1), bon.Int(2)), bon.NewSet(bon.Int(1), bon.Int(3)), false},
		{"set/array", bon.NewSet(bon.Int(1)), bon.Array{bon.Int(1)}, false},
		{
			"nested",
			bon.Object{"log": bon.Array{bon.Object{"time": bon.Int(123)}, bon.Object{"time": bon.Int(234)}}},
			bon.NewMap(bon.Entry{
				Key: bon.String("log"),
				Value: bon.NewList(
					bon.NewMap(bon.Entry{Key: bon.String("time"), Value: bon.Int(123)}),
					bon.NewMap(bon.Entry{Key: bon.String("time"), Value: bon.Int(234)}),
				),
			}),
			true,
		},
		{"nil", nil, nil, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.equal, bon.Equal(c.a, c.b), "Equal(a, b)")
			assert.Equal(t, c.equal, bon.Equal(c.b, c.a), "Equal(b, a)")
			if c.equal {
				assert.Equal(t, bon.Hash(c.a), bon.Hash(c.b), "hash")
			}
		})
	}
}

func TestSetOfContainers(t *testing.T) {
	a := bon.NewSet(bon.Array{bon.Int(1)}, bon.Object{"k": bon.Int(2)})
	b := bon.NewSet(
		bon.NewMap(bon.Entry{Key: bon.String("k"), Value: bon.Int(2)}),
		bon.NewList(bon.Int(1)),
	)
	assert.True(t, bon.Equal(a, b))
	// An array and an equal list are the same set member.
	assert.Equal(t, 1, bon.NewSet(bon.Array{bon.Int(1)}, bon.NewList(bon.Int(1))).Len())
}
