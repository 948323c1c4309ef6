package clierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brimdata/bon/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFormatParseError(t *testing.T) {
	_, err := codec.Decode([]byte("[ 1  2 ?x"))
	require.Error(t, err)
	err = Format(fmt.Errorf("in.bon: %w", err))
	assert.EqualError(t, err, "in.bon: bad syntax: unexpected byte '?' (offset 7):\n?x\n^ ===\nparsed so far in this group: [2,1]")
}

func TestFormatMulti(t *testing.T) {
	_, parseErr := codec.Decode([]byte("?"))
	plain := errors.New("plain")
	err := Format(multierr.Combine(plain, parseErr))
	assert.EqualError(t, err, "plain\nbad syntax: unexpected byte '?' (offset 0):\n?\n^ ===")
	assert.NoError(t, Format(nil))
}

func TestFormatEndOfInput(t *testing.T) {
	_, err := codec.Decode([]byte("[ 1 "))
	require.Error(t, err)
	err = Format(err)
	assert.EqualError(t, err, "bad syntax: end of input inside a group (offset 4):\n\n^ ===\nparsed so far in this group: [1]")
}

func TestFormatUnlocated(t *testing.T) {
	_, err := codec.Encode(nil)
	require.Error(t, err)
	assert.Equal(t, err.Error(), Format(err).Error())
}
