package yamlbon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	atom := bon.NewAtom
	cases := []struct {
		in       string
		expected bon.Value
	}{
		{"42", bon.Int(42)},
		{"-72", bon.Int(-72)},
		{"0x10", bon.Int(16)},
		{"1.5", bon.MustFloat(1.5)},
		{"!!float 42", bon.MustFloat(42)},
		{"hello", bon.String("hello")},
		{`"42"`, bon.String("42")},
		{"!atom ok", atom("ok")},
		{"true", atom("true")},
		{"~", atom("null")},
		{"!!binary dGV4dA==", bon.NewBinary([]byte("text"))},
		{"[65, 0, 66]", bon.Array{bon.Int(65), bon.Int(0), bon.Int(66)}},
		{"!list [1, 2]", bon.NewList(bon.Int(1), bon.Int(2))},
		{"!tuple [!atom record, !atom content]", bon.NewTuple(atom("record"), atom("content"))},
		{"!set [1, 2, 2]", bon.NewSet(bon.Int(1), bon.Int(2))},
		{"{user: pw}", bon.Object{"user": bon.String("pw")}},
		{"{1: one}", bon.NewMap(bon.Entry{Key: bon.Int(1), Value: bon.String("one")})},
		{"!map {a: 1}", bon.NewMap(bon.Entry{Key: bon.String("a"), Value: bon.Int(1)})},
		{"a: &x [1]\nb: *x", bon.Object{"a": bon.Array{bon.Int(1)}, "b": bon.Array{bon.Int(1)}}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v, err := Unmarshal([]byte(c.in))
			require.NoError(t, err)
			assert.Equal(t, bon.KindOf(c.expected), bon.KindOf(v))
			assert.True(t, bon.Equal(c.expected, v), "got %s", bon.Format(v))
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal([]byte(".inf"))
	assert.True(t, bonerr.IsNotANumber(err), "%v", err)
	_, err = Unmarshal([]byte("!foo 1"))
	assert.True(t, bonerr.IsUnknownType(err), "%v", err)
	_, err = Unmarshal([]byte("!!int x"))
	assert.True(t, bonerr.IsBadSyntax(err), "%v", err)
	_, err = Unmarshal([]byte("[1, 2"))
	assert.True(t, bonerr.IsBadSyntax(err), "%v", err)
	_, err = Unmarshal(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestRoundTrip(t *testing.T) {
	atom := bon.NewAtom
	vals := []bon.Value{
		bon.Int(42),
		bon.MustFloat(42),
		bon.MustFloat(-3.14),
		atom("ok"),
		atom("Not Bare"),
		atom("null"),
		bon.String("true"),
		bon.String("line\nbreak"),
		bon.NewBinary([]byte{0, 1, 2, 255}),
		bon.NewTuple(atom("record"), bon.Int(1)),
		bon.NewList(bon.Int(1), bon.String("a")),
		bon.Array{},
		bon.Object{"log": bon.Array{bon.Object{"x": bon.Int(1)}}},
		bon.NewSet(bon.Int(1), bon.Int(2), bon.Int(3)),
		bon.NewMap(
			bon.Entry{Key: bon.Int(1), Value: bon.String("one")},
			bon.Entry{Key: bon.NewTuple(atom("a"), atom("b")), Value: bon.Array{}},
		),
	}
	for _, v := range vals {
		t.Run(bon.Format(v), func(t *testing.T) {
			b, err := Marshal(v)
			require.NoError(t, err)
			out, err := Unmarshal(b)
			require.NoError(t, err, "%s", b)
			assert.Equal(t, bon.KindOf(v), bon.KindOf(out), "%s", b)
			assert.True(t, bon.Equal(v, out), "%s decoded as %s", b, bon.Format(out))
		})
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(bon.Int(1)))
	require.NoError(t, enc.Encode(bon.NewAtom("two")))
	require.NoError(t, enc.Close())
	vals, err := UnmarshalAll(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, bon.Int(1), vals[0])
	assert.Equal(t, bon.NewAtom("two"), vals[1])
}

func TestToNodeUnknown(t *testing.T) {
	_, err := ToNode(nil)
	assert.True(t, bonerr.IsUnknownType(err))
}
