// Package ztest runs golden tests of the BON codec described in YAML files.
//
// A codec test names a value in YAML (see package yamlbon), its expected
// encoding and, optionally, the formatted text of the decoded value:
//
//	input: "!tuple [!atom record, !atom content]"
//	bon: "['a:7:content''a:6:record' t "
//	text: "{record,content}"
//
// A test without input decodes bon only.  If error is set, decoding must
// fail with an error whose message contains it:
//
//	bon: "'a:5:ab'"
//	error: malformed length
//
// A script test runs a bash script with the bon command on the PATH and
// compares the named outputs:
//
//	script: echo 42 | bon encode -i yaml
//	outputs:
//	  - name: stdout
//	    data: " 42 "
//
// Script tests run only when a directory holding the bon command is given
// in the ZTEST_PATH environment variable.
package ztest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/codec"
	"github.com/brimdata/bon/yamlbon"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

type ZTest struct {
	Skip string `yaml:"skip,omitempty"`
	Tag  string `yaml:"tag,omitempty"`

	// For codec tests.
	Input string  `yaml:"input,omitempty"`
	BON   *string `yaml:"bon,omitempty"`
	Text  string  `yaml:"text,omitempty"`
	Error string  `yaml:"error,omitempty"`
	Lists bool    `yaml:"lists,omitempty"`

	// For script tests.
	Script  string `yaml:"script,omitempty"`
	Inputs  []File `yaml:"inputs,omitempty"`
	Outputs []File `yaml:"outputs,omitempty"`
}

// File is an input written to or an output read from the directory of a
// script test.  Exactly one of Data, Re and Source gives the expected
// content of an output.  With none of them set, the file of the same name
// next to the test file is used.
type File struct {
	Name   string  `yaml:"name"`
	Data   *string `yaml:"data,omitempty"`
	Re     string  `yaml:"regexp,omitempty"`
	Source string  `yaml:"source,omitempty"`
}

// Run runs each *.yaml file in dirname as a subtest of t.
func Run(t *testing.T, dirname string) {
	shellPath := os.Getenv("ZTEST_PATH")
	tag := os.Getenv("ZTEST_TAG")
	files, err := filepath.Glob(filepath.Join(dirname, "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatalf("no ztest files in %s", dirname)
	}
	for _, filename := range files {
		filename := filename
		name := strings.TrimSuffix(filepath.Base(filename), ".yaml")
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			zt, err := FromYAMLFile(filename)
			if err != nil {
				t.Fatalf("%s: %s", filename, err)
			}
			if reason := zt.ShouldSkip(shellPath, tag); reason != "" {
				t.Skip(reason)
			}
			if err := zt.Check(shellPath, dirname, t.TempDir()); err != nil {
				t.Fatalf("%s: %s", filename, err)
			}
		})
	}
}

// FromYAMLFile reads a test from a YAML file.  Unknown fields are an error.
func FromYAMLFile(filename string) (*ZTest, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var zt ZTest
	if err := dec.Decode(&zt); err != nil {
		return nil, err
	}
	return &zt, nil
}

// ShouldSkip returns a reason to skip the test or the empty string.
func (z *ZTest) ShouldSkip(shellPath, tag string) string {
	switch {
	case z.Skip != "":
		return z.Skip
	case z.Script != "" && shellPath == "":
		return "script test on in-process run"
	case z.Tag != tag:
		return fmt.Sprintf("tag %q does not match ZTEST_TAG=%q", z.Tag, tag)
	}
	return ""
}

// Check runs the test.  testDir holds the test file and tempDir is the
// working directory of a script test.
func (z *ZTest) Check(shellPath, testDir, tempDir string) error {
	if z.Script != "" {
		return z.RunScript(shellPath, testDir, tempDir)
	}
	return z.RunCodec()
}

// RunCodec checks the encoding and decoding described by the test.
func (z *ZTest) RunCodec() error {
	if z.Input == "" && z.BON == nil {
		return errors.New("test needs input, bon or script")
	}
	var want bon.Value
	if z.Input != "" {
		v, err := yamlbon.Unmarshal([]byte(z.Input))
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}
		want = v
		b, err := codec.Encode(v)
		if err != nil {
			return checkError(z.Error, err)
		}
		if z.BON != nil {
			if err := diffErr("bon", *z.BON, string(b)); err != nil {
				return err
			}
		} else {
			s := string(b)
			z.BON = &s
		}
	}
	dec := codec.NewDecoder(codec.Options{Lists: z.Lists})
	got, err := dec.Decode([]byte(*z.BON))
	if err != nil {
		return checkError(z.Error, err)
	}
	if z.Error != "" {
		return fmt.Errorf("expected error containing %q, decoded %s", z.Error, bon.Format(got))
	}
	if want != nil && !bon.Equal(want, got) {
		return fmt.Errorf("decoded %s, expected %s", bon.Format(got), bon.Format(want))
	}
	if z.Text != "" {
		return diffErr("text", z.Text, bon.Format(got))
	}
	return nil
}

func checkError(expected string, err error) error {
	if expected == "" {
		return err
	}
	if !strings.Contains(err.Error(), expected) {
		return fmt.Errorf("expected error containing %q, got %q", expected, err)
	}
	return nil
}

// RunScript runs the script with shellPath on the PATH in tempDir and
// compares its outputs.
func (z *ZTest) RunScript(shellPath, testDir, tempDir string) error {
	dir := Dir(tempDir)
	for _, f := range z.Inputs {
		data, err := f.load(testDir)
		if err != nil {
			return err
		}
		if err := dir.Write(f.Name, []byte(data)); err != nil {
			return err
		}
	}
	stdout, stderr, err := RunShell(dir, shellPath, z.Script, nil, nil)
	if err != nil {
		return fmt.Errorf("script failed: %w\n=== stdout ===\n%s=== stderr ===\n%s", err, stdout, stderr)
	}
	for _, f := range z.Outputs {
		var actual string
		switch f.Name {
		case "stdout":
			actual = stdout
		case "stderr":
			actual = stderr
		default:
			b, err := dir.Read(f.Name)
			if err != nil {
				return err
			}
			actual = string(b)
		}
		if f.Re != "" {
			re, err := regexp.Compile(f.Re)
			if err != nil {
				return err
			}
			if !re.MatchString(actual) {
				return fmt.Errorf("%s: %q does not match %q", f.Name, actual, f.Re)
			}
			continue
		}
		expected, err := f.load(testDir)
		if err != nil {
			return err
		}
		if err := diffErr(f.Name, expected, actual); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) load(testDir string) (string, error) {
	if f.Data != nil {
		return *f.Data, nil
	}
	name := f.Source
	if name == "" {
		name = f.Name
	}
	b, err := Dir(testDir).Read(name)
	return string(b), err
}

func diffErr(name, expected, actual string) error {
	if expected == actual {
		return nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		FromFile: "expected",
		B:        difflib.SplitLines(actual),
		ToFile:   "actual",
		Context:  5,
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("%s mismatch\n%s", name, diff)
}
