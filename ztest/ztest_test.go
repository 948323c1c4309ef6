package ztest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestShouldSkip(t *testing.T) {
	assert.Equal(t, "script test on in-process run", (&ZTest{Script: "x"}).ShouldSkip("", ""))
	assert.Equal(t, "", (&ZTest{Script: "x"}).ShouldSkip("/bin", ""))
	assert.Equal(t, "reason", (&ZTest{Skip: "reason"}).ShouldSkip("", ""))
	assert.Equal(t, `tag "x" does not match ZTEST_TAG=""`, (&ZTest{Tag: "x"}).ShouldSkip("", ""))
}

func TestRunCodec(t *testing.T) {
	t.Run("encode and decode", func(t *testing.T) {
		err := (&ZTest{
			Input: "!tuple [!atom record, !atom content]",
			BON:   strptr("['a:7:content''a:6:record' t "),
			Text:  "{record,content}",
		}).RunCodec()
		assert.NoError(t, err)
	})
	t.Run("input only", func(t *testing.T) {
		assert.NoError(t, (&ZTest{Input: "{user: pw}"}).RunCodec())
	})
	t.Run("bon mismatch", func(t *testing.T) {
		err := (&ZTest{Input: "42", BON: strptr(" 43 ")}).RunCodec()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bon mismatch")
		assert.Contains(t, err.Error(), "+ 42 ")
	})
	t.Run("expected error", func(t *testing.T) {
		err := (&ZTest{BON: strptr("'a:5:ab'"), Error: "malformed length"}).RunCodec()
		assert.NoError(t, err)
	})
	t.Run("missing error", func(t *testing.T) {
		err := (&ZTest{BON: strptr(" 1 "), Error: "bad syntax"}).RunCodec()
		assert.EqualError(t, err, `expected error containing "bad syntax", decoded 1`)
	})
	t.Run("lists", func(t *testing.T) {
		err := (&ZTest{BON: strptr("[ 2  1  l "), Lists: true, Text: "[1,2]"}).RunCodec()
		assert.NoError(t, err)
	})
	t.Run("empty", func(t *testing.T) {
		assert.EqualError(t, (&ZTest{}).RunCodec(), "test needs input, bon or script")
	})
}

func TestRunScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows because RunScript uses cmd.exe instead of bash")
	}
	t.Run("outputs", func(t *testing.T) {
		testDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(testDir, "testdirfile"), []byte("testdirfile\n"), 0644))
		err := (&ZTest{
			Script: `
				echo stdout
				echo stderr >&2
				touch empty
				echo notempty > notempty
				echo regexp > regexp
				echo testdirfile > testdirfile
				echo testdirfile > testdirfile2
				cat in > copy
				`,
			Inputs: []File{
				{Name: "in", Data: strptr("input\n")},
			},
			Outputs: []File{
				{Name: "stdout", Data: strptr("stdout\n")},
				{Name: "stderr", Data: strptr("stderr\n")},
				{Name: "empty", Data: strptr("")},
				{Name: "notempty", Data: strptr("notempty\n")},
				{Name: "regexp", Re: "^re"},
				{Name: "testdirfile"},
				{Name: "testdirfile2", Source: "testdirfile"},
				{Name: "copy", Data: strptr("input\n")},
			},
		}).RunScript("", testDir, t.TempDir())
		assert.NoError(t, err)
	})
	t.Run("error", func(t *testing.T) {
		err := (&ZTest{
			Script:  "echo 1; echo 2 >&2; exit 3",
			Outputs: []File{},
		}).RunScript("", "", "")
		assert.EqualError(t, err, "script failed: exit status 3\n=== stdout ===\n1\n=== stderr ===\n2\n")
	})
}

func TestFromYAMLFile(t *testing.T) {
	dir := Dir(t.TempDir())
	require.NoError(t, dir.Write("ok.yaml", []byte("input: \"42\"\nbon: \" 42 \"\n")))
	require.NoError(t, dir.Write("bad.yaml", []byte("inptu: 42\n")))
	zt, err := FromYAMLFile(dir.Join("ok.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "42", zt.Input)
	assert.Equal(t, " 42 ", *zt.BON)
	_, err = FromYAMLFile(dir.Join("bad.yaml"))
	assert.Error(t, err)
}

func TestShellEnv(t *testing.T) {
	t.Setenv("BON_ZTEST_SET", "x")
	os.Unsetenv("BON_ZTEST_UNSET")
	env := shellEnv(Dir("/work"), "/opt/bon/bin", []string{"BON_ZTEST_SET", "BON_ZTEST_UNSET"})
	assert.Equal(t, []string{"BON_ZTEST_SET=x", "HOME=/work", "PATH=/bin:/usr/bin:/opt/bon/bin"}, env)
}
