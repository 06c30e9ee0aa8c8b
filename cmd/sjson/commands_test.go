// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/sjson"
	"github.com/creachadair/sjson/resource"
	"github.com/creachadair/sjson/strid"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParsePath(t *testing.T) {
	got := parsePath([]string{"units", "0", "-1", "x1", "2.5"})
	want := []any{"units", 0, -1, "x1", "2.5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsePath (-want, +got):\n%s", diff)
	}
}

func TestLoadCompiler(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		c, err := loadCompiler(sjson.New(`{
  // build settings
  compiler: "./luajit",
  flags: ["-b"],
  debug_flags: ["-b", "-g"],
  version: 3
}`))
		if err != nil {
			t.Fatalf("loadCompiler: %v", err)
		}
		want := &resource.Compiler{
			Command:    "./luajit",
			Flags:      []string{"-b"},
			DebugFlags: []string{"-b", "-g"},
			Version:    3,
		}
		if diff := cmp.Diff(want, c, cmpopts.IgnoreFields(resource.Compiler{}, "Logger")); diff != "" {
			t.Errorf("Compiler (-want, +got):\n%s", diff)
		}
	})
	t.Run("Defaults", func(t *testing.T) {
		c, err := loadCompiler(sjson.New(`{compiler: "cc", flags: null}`))
		if err != nil {
			t.Fatalf("loadCompiler: %v", err)
		}
		if c.Version != 1 || c.Flags != nil || c.DebugFlags != nil {
			t.Errorf("Compiler: got %+v, want defaults", c)
		}
	})
	t.Run("NoCompiler", func(t *testing.T) {
		if _, err := loadCompiler(sjson.New(`{flags: []}`)); err == nil {
			t.Error("loadCompiler: got nil error")
		}
	})
	t.Run("WrongType", func(t *testing.T) {
		_, err := loadCompiler(sjson.New(`{compiler: "cc", flags: "-b"}`))
		if !errors.Is(err, sjson.ErrWrongType) {
			t.Errorf("loadCompiler: got %v, want %v", err, sjson.ErrWrongType)
		}
	})
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug", io.Discard); err != nil {
		t.Errorf("newLogger(debug): %v", err)
	}
	if _, err := newLogger("verbose", io.Discard); err == nil {
		t.Error("newLogger(verbose): got nil error")
	}
}

// run executes the command line args and returns what it wrote to stdout and
// stderr.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// writeFile writes text to a file named name in dir and returns its path.
func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.sjson", `// a unit
{
  name: "soldier",
  pos: [1, 2, 3],
  tags: ["a\tb"],
  "two words": true,
  name: "marine"
}`)
	bad := writeFile(t, dir, "bad.sjson", `{"a": [1, 2`)
	missing := filepath.Join(dir, "missing.sjson")

	tests := []struct {
		name    string
		args    []string
		want    string // expected stdout
		wantErr string // substring of the expected error, if any
	}{
		{"GetArray", []string{"get", good, "pos"}, "[1, 2, 3]\n", ""},
		{"GetRaw", []string{"get", good, "name"}, `"marine"` + "\n", ""},
		{"GetDecode", []string{"get", "--decode", good, "tags", "0"}, "a\tb\n", ""},
		{"GetNegative", []string{"get", good, "pos", "-1"}, "3\n", ""},
		{"GetNoKey", []string{"get", good, "speed"}, "", "key not found"},
		{"GetMalformed", []string{"get", bad}, "", "unterminated object"},
		{"GetMalformedPath", []string{"get", bad, "a", "0"}, "", bad},
		{"GetMissing", []string{"get", missing}, "", "no such file"},

		{"Keys", []string{"keys", good}, "name\npos\ntags\ntwo words\n", ""},
		{"KeysQuoted", []string{"keys", "-q", good}, `"name"` + "\n" + `"pos"` + "\n" + `"tags"` + "\n" + `"two words"` + "\n", ""},
		{"KeysNested", []string{"keys", writeFile(t, dir, "nested.sjson", `[{}, {x: 1}]`), "-1"}, "x\n", ""},
		{"KeysNotObject", []string{"keys", good, "pos"}, "", "wrong value type"},
		{"KeysMalformed", []string{"keys", bad}, "", "unterminated object"},

		{"CheckGood", []string{"check", good}, "", ""},
		{"CheckSome", []string{"check", good, bad, missing}, "", "2 of 3 documents are invalid"},

		{"ID", []string{"id", "unit", "mesh"}, strid.New("unit").String() + "\tunit\n" + strid.New("mesh").String() + "\tmesh\n", ""},
		{"IDResource", []string{"id", "-r", "units/soldier.unit"}, strid.NewResource("unit", "units/soldier").String() + "\tunits/soldier.unit\n", ""},
		{"IDBadResource", []string{"id", "-r", "soldier"}, "", "no type"},

		{"BadLogLevel", []string{"--log-level", "loud", "id", "x"}, "", "illegal log level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, logs, err := run(t, tc.args...)
			if tc.wantErr == "" && err != nil {
				t.Fatalf("Run %q: unexpected error: %v\nlogs:\n%s", tc.args, err, logs)
			} else if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("Run %q: got nil error, want %q", tc.args, tc.wantErr)
				} else if !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("Run %q: got error %v, want %q", tc.args, err, tc.wantErr)
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Run %q output (-want, +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestCheckLogs(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.sjson", `[1, 2]`)
	bad := writeFile(t, dir, "bad.sjson", `[1, 2] 3`)

	_, logs, err := run(t, "check", good, bad)
	if err == nil {
		t.Fatal("check: got nil error")
	}
	if !strings.Contains(logs, bad) || !strings.Contains(logs, "extra input after value") {
		t.Errorf("check logs do not report %s:\n%s", bad, logs)
	}
	if strings.Contains(logs, good) {
		t.Errorf("check logs report valid file %s:\n%s", good, logs)
	}
}

func TestCompileCommand(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skipf("No shell available: %v", err)
	}
	dir := t.TempDir()
	src := writeFile(t, dir, "boot.lua", "print 'boot'")
	config := writeFile(t, dir, "compiler.sjson", `{
  compiler: `+sjson.Quote(sh)+`,
  flags: ["-c", `+sjson.Quote(`{ printf 'B:'; cat "$1"; } > "$2"`)+`, "sh"],
  debug_flags: ["-c", `+sjson.Quote(`{ printf 'G:'; cat "$1"; } > "$2"`)+`, "sh"],
  version: 7
}`)

	for _, tc := range []struct {
		flags []string
		want  string
	}{
		{nil, "B:print 'boot'"},
		{[]string{"--debug"}, "G:print 'boot'"},
	} {
		out := filepath.Join(dir, "boot.bc")
		args := append([]string{"compile", "-c", config}, tc.flags...)
		if _, logs, err := run(t, append(args, src, out)...); err != nil {
			t.Fatalf("compile %q: %v\nlogs:\n%s", tc.flags, err, logs)
		}

		f, err := os.Open(out)
		if err != nil {
			t.Fatalf("Open output: %v", err)
		}
		h, data, err := resource.ReadBlob(f)
		f.Close()
		if err != nil {
			t.Fatalf("ReadBlob: %v", err)
		}
		if h.Version != 7 || string(data) != tc.want {
			t.Errorf("compile %q: got %+v %q, want version 7 %q", tc.flags, h, data, tc.want)
		}
	}

	t.Run("Failure", func(t *testing.T) {
		failing := writeFile(t, dir, "failing.sjson", `{compiler: `+sjson.Quote(sh)+`, flags: ["-c", "exit 3", "sh"]}`)
		out := filepath.Join(dir, "failed.bc")
		if _, _, err := run(t, "compile", "-c", failing, src, out); err == nil {
			t.Fatal("compile: got nil error")
		}
		if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Output of failed compile: got %v, want it removed", err)
		}
	})
	t.Run("BadConfig", func(t *testing.T) {
		broken := writeFile(t, dir, "broken.sjson", `{flags: ["-b"]}`)
		_, _, err := run(t, "compile", "-c", broken, src, filepath.Join(dir, "x.bc"))
		if err == nil || !strings.Contains(err.Error(), "no compiler specified") {
			t.Errorf("compile: got %v, want missing compiler error", err)
		}
	})
}
