package bon_test

import (
	"math"
	"testing"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		val  bon.Value
		kind bon.Kind
	}{
		{bon.Int(42), bon.KindInt},
		{bon.MustFloat(42), bon.KindFloat},
		{bon.NewAtom("ok"), bon.KindAtom},
		{bon.String("text"), bon.KindString},
		{bon.NewBinary([]byte("text")), bon.KindBinary},
		{bon.NewTuple(bon.Int(1)), bon.KindTuple},
		{bon.NewList(bon.Int(1)), bon.KindList},
		{bon.Empty, bon.KindList},
		{bon.Array{bon.Int(1)}, bon.KindArray},
		{bon.Object{"a": bon.Int(1)}, bon.KindObject},
		{bon.NewMap(), bon.KindMap},
		{bon.NewSet(), bon.KindSet},
		{nil, bon.KindInvalid},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, bon.KindOf(c.val), "value %s", bon.Format(c.val))
	}
	assert.Equal(t, "float", bon.KindFloat.String())
	assert.True(t, bon.KindSet.IsContainer())
	assert.False(t, bon.KindBinary.IsContainer())
}

func TestNewFloat(t *testing.T) {
	f, err := bon.NewFloat(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f.Float64())
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := bon.NewFloat(bad)
		assert.True(t, bonerr.IsNotANumber(err), "%v", bad)
	}
	assert.Panics(t, func() { bon.MustFloat(math.NaN()) })
}

func TestAtomInterning(t *testing.T) {
	a := bon.NewAtom("record")
	b := bon.NewAtom("rec" + "ord")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, bon.NewAtom("content"))
	assert.Equal(t, "record", b.Name())
	assert.Equal(t, "", bon.Atom{}.Name())
	assert.Equal(t, bon.NewAtom(""), bon.Atom{})
}

func TestBinaryCopies(t *testing.T) {
	raw := []byte("abc")
	b := bon.NewBinary(raw)
	raw[0] = 'x'
	assert.Equal(t, []byte("abc"), b.Bytes())
	assert.Equal(t, 3, b.Len())
}

func TestTuple(t *testing.T) {
	fields := []bon.Value{bon.NewAtom("log"), bon.String("file.log")}
	tup := bon.NewTuple(fields...)
	fields[0] = bon.Int(0)
	v, err := tup.Field(0)
	require.NoError(t, err)
	assert.Equal(t, bon.NewAtom("log"), v)
	_, err = tup.Field(2)
	assert.ErrorIs(t, err, bon.ErrIndex)
	assert.True(t, bon.Equal(bon.NewList(bon.NewAtom("log"), bon.String("file.log")), bon.TupleToList(tup)))
}

func TestLen(t *testing.T) {
	n, err := bon.Len(bon.NewSet(bon.Int(1), bon.Int(1), bon.Int(2)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = bon.Len(bon.Int(1))
	assert.ErrorIs(t, err, bon.ErrNotContainer)
}

func TestMapLastWins(t *testing.T) {
	m := bon.NewMap(
		bon.Entry{Key: bon.String("user"), Value: bon.String("guest")},
		bon.Entry{Key: bon.String("pw"), Value: bon.String("123")},
		bon.Entry{Key: bon.String("user"), Value: bon.String("admin")},
	)
	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(bon.String("user"))
	require.True(t, ok)
	assert.Equal(t, bon.String("admin"), v)

	// Keys are located structurally, across representations.
	m = bon.NewMap(bon.Entry{Key: bon.Array{bon.Int(1), bon.Int(2)}, Value: bon.NewAtom("pair")})
	v, ok = m.Get(bon.NewList(bon.Int(1), bon.Int(2)))
	require.True(t, ok)
	assert.Equal(t, bon.NewAtom("pair"), v)
}

func TestMapWithIsPersistent(t *testing.T) {
	m := bon.NewMap(bon.Entry{Key: bon.Int(1), Value: bon.Int(2)})
	m2 := m.With(bon.Int(3), bon.Int(4))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m2.Len())
	assert.False(t, m.Has(bon.Int(3)))

	var empty *bon.Map
	assert.Equal(t, 0, empty.Len())
	_, ok := empty.Get(bon.Int(1))
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	s := bon.NewSet(bon.Int(1), bon.Int(2), bon.Int(1), bon.MustFloat(1))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(bon.MustFloat(1)))
	assert.False(t, s.Has(bon.Int(3)))
	s2 := s.With(bon.Int(3))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s2.Has(bon.Int(3)))
}

func TestObjectToMap(t *testing.T) {
	o := bon.Object{"user": bon.String("admin"), "pw": bon.String("123")}
	assert.Equal(t, []string{"pw", "user"}, o.Keys())
	assert.True(t, bon.Equal(o, o.ToMap()))
}
