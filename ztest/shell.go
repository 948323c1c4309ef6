package ztest

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// RunShell runs script in dir and returns its standard output and standard
// error.  The environment holds only HOME, set to dir, a PATH searching
// bindir after the system directories, and those variables named in
// useenvs that are set in the environment of the test.
func RunShell(dir Dir, bindir, script string, stdin io.Reader, useenvs []string) (string, string, error) {
	cmd := shellCommand(script)
	cmd.Env = shellEnv(dir, bindir, useenvs)
	cmd.Dir = dir.Path()
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// shellCommand runs bash with errexit and pipefail so a bon command failing
// anywhere in the script fails the test.
func shellCommand(script string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd.exe", "/c", script)
	}
	return exec.Command("bash", "-e", "-o", "pipefail", "-c", script)
}

func shellEnv(dir Dir, bindir string, useenvs []string) []string {
	var env []string
	for _, name := range useenvs {
		if v, ok := os.LookupEnv(name); ok {
			env = append(env, name+"="+v)
		}
	}
	return append(env, "HOME="+dir.Path(), "PATH=/bin:/usr/bin:"+bindir)
}
