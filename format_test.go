package bon_test

import (
	"testing"

	"github.com/brimdata/bon"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		val      bon.Value
		expected string
	}{
		{bon.Int(-72), "-72"},
		{bon.MustFloat(1.5), "1.5"},
		{bon.MustFloat(42), "42.0"},
		{bon.NewAtom("atom"), "atom"},
		{bon.NewAtom("Atom"), "'Atom'"},
		{bon.NewAtom("it's"), `'it\'s'`},
		{bon.String("say \"hi\"\n"), `"say \"hi\"\n"`},
		{bon.NewBinary([]byte{1, 2, 255}), "<<1,2,255>>"},
		{bon.NewTuple(bon.NewAtom("record"), bon.NewAtom("content")), "{record,content}"},
		{bon.NewList(bon.Int(1), bon.Int(2)), "[1,2]"},
		{bon.Empty, "[]"},
		{bon.Array{bon.Int(1), bon.Int(2)}, "[1, 2]"},
		{bon.Object{"user": bon.String("admin"), "pw": bon.String("123")}, `{ "pw": "123", "user": "admin" }`},
		{bon.Object{}, "{}"},
		{bon.NewMap(bon.Entry{Key: bon.NewAtom("k"), Value: bon.Int(1)}), "#{k => 1}"},
		{bon.NewSet(bon.Int(1), bon.Int(2)), "Set{1,2}"},
		{nil, "<invalid>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, bon.Format(c.val))
	}
	assert.Equal(t, "{record,content}", bon.NewTuple(bon.NewAtom("record"), bon.NewAtom("content")).String())
}

func TestQuotedString(t *testing.T) {
	assert.Equal(t, `"tab\there"`, bon.QuotedString("tab\there"))
	assert.Equal(t, `"\u0001"`, bon.QuotedString("\x01"))
	assert.Equal(t, `"héllo"`, bon.QuotedString("héllo"))
	assert.Equal(t, "\"a\xffb\"", bon.QuotedString("a\xffb"))
}

func TestScanQuotedString(t *testing.T) {
	s, n, err := bon.ScanQuotedString([]byte(`a\"b\\cé😀" rest`))
	assert.NoError(t, err)
	assert.Equal(t, "a\"b\\cé😀", s)
	assert.Equal(t, len(`a\"b\\cé😀"`), n)

	s, _, err = bon.ScanQuotedString([]byte(`\ud83d\ude00\/"`))
	assert.NoError(t, err)
	assert.Equal(t, "😀/", s)

	_, _, err = bon.ScanQuotedString([]byte(`abc`))
	assert.ErrorIs(t, err, bon.ErrUnterminatedString)
	_, _, err = bon.ScanQuotedString([]byte(`a\qb"`))
	assert.ErrorIs(t, err, bon.ErrBadEscape)
	_, _, err = bon.ScanQuotedString([]byte(`a\u12"`))
	assert.ErrorIs(t, err, bon.ErrBadEscape)
}
