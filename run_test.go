package lox

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type programFixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Stdout string `yaml:"stdout"`
	Stderr string `yaml:"stderr"` // substring match, empty means "no requirement"
	Exit   int    `yaml:"exit"`
}

func loadFixtures(t *testing.T) []programFixture {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "programs.yaml"))
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}
	var fixtures []programFixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}
	return fixtures
}

func Test_RunFile_Programs(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), fx.Name+".lox")
			if err := os.WriteFile(path, []byte(fx.Source), 0o644); err != nil {
				t.Fatalf("writing script: %v", err)
			}

			var out, errs bytes.Buffer
			code, err := NewRunner(&out, &errs).RunFile(path)
			if err != nil {
				t.Fatalf("RunFile: %v", err)
			}
			if code != fx.Exit {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, fx.Exit, errs.String())
			}
			if out.String() != fx.Stdout {
				t.Errorf("stdout = %q, want %q", out.String(), fx.Stdout)
			}
			if fx.Stderr != "" && !strings.Contains(errs.String(), fx.Stderr) {
				t.Errorf("stderr = %q, want it to contain %q", errs.String(), fx.Stderr)
			}
		})
	}
}

func Test_RunFile_MissingFile(t *testing.T) {
	var out, errs bytes.Buffer
	code, err := NewRunner(&out, &errs).RunFile(filepath.Join(t.TempDir(), "nope.lox"))
	if err == nil {
		t.Fatal("expected an I/O error")
	}
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
