package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initializer struct {
	err error
}

func (i initializer) Init() error { return i.err }

func TestInitCombinesErrors(t *testing.T) {
	var f Flags
	f.SetFlags(flag.NewFlagSet("test", flag.ContinueOnError))
	errA, errB := errors.New("a"), errors.New("b")
	_, _, err := f.Init(initializer{errA}, initializer{}, initializer{errB})
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestInitProfiles(t *testing.T) {
	dir := t.TempDir()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	cpu := filepath.Join(dir, "cpu.prof")
	mem := filepath.Join(dir, "mem.prof")
	require.NoError(t, fs.Parse([]string{"-cpuprofile", cpu, "-memprofile", mem}))
	ctx, cleanup, err := f.Init(initializer{})
	require.NoError(t, err)
	assert.NoError(t, ctx.Err())
	cleanup()
	assert.EqualError(t, ctx.Err(), "interrupted")
	assert.True(t, FileExists(cpu))
	assert.True(t, FileExists(mem))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
	assert.True(t, FileExists("-"))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "y")))
}
