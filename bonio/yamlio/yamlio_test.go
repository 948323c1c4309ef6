package yamlio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"github.com/brimdata/bon/bonio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	const input = `
42
---
!tuple [!atom record, !atom content]
---
user: pw
`
	vals, err := bonio.ReadAll(NewReader(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, bon.Int(42), vals[0])
	assert.Equal(t, "{record,content}", bon.Format(vals[1]))
	assert.True(t, bon.Equal(bon.Object{"user": bon.String("pw")}, vals[2]))
}

func TestReaderError(t *testing.T) {
	_, err := NewReader(strings.NewReader("[1, 2")).Read()
	assert.True(t, bonerr.IsBadSyntax(err))
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(bonio.NopCloser(&buf))
	require.NoError(t, w.Write(bon.Int(1)))
	require.NoError(t, w.Write(bon.NewAtom("ok")))
	require.NoError(t, w.Close())
	assert.Equal(t, "1\n---\n!atom ok\n", buf.String())
}
