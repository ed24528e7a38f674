// Package golden runs table-driven tests whose table lives on disk: every input
// file under a root directory is a case, and sibling files hold the expected
// outputs.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden test cases.
type Corpus struct {
	// Root is the test data directory, relative to the calling test file.
	Root string
	// Refresh names an environment variable holding a glob; matching cases
	// have their expectation files rewritten instead of compared.
	Refresh string
	// Extensions lists input file extensions without the dot, e.g. "ts".
	Extensions []string
	// Outputs are compared against files named <input>.<Extension>. A missing
	// file means the output is expected to be empty.
	Outputs []Output
}

// Output is one expected output of a case.
type Output struct {
	Extension string
	// Compare may be nil for an exact match.
	Compare Compare
}

// Compare returns "" when got matches want, otherwise a description of the mismatch.
type Compare func(got, want string) string

// Run executes test for every case in the corpus. test fills outputs, which has
// one slot per Output.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(c.Extensions, strings.TrimPrefix(filepath.Ext(p), ".")) {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: walking %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("golden: no cases under %q", root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing cases matching %q", refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: reading %q: %v", path, err)
			}
			outputs := make([]string, len(c.Outputs))
			test(t, name, string(data), outputs)

			doRefresh := false
			if refresh != "" {
				doRefresh, _ = doublestar.Match(refresh, name)
			}
			for i, out := range c.Outputs {
				want := path + "." + out.Extension
				if doRefresh {
					writeExpectation(t, want, outputs[i])
					continue
				}
				compareExpectation(t, want, outputs[i], out.Compare)
			}
		})
	}
}

func compareExpectation(t *testing.T, path, got string, cmp Compare) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("golden: reading %q: %v", path, err)
		return
	}
	if cmp == nil {
		cmp = Diff
	}
	if msg := cmp(got, string(data)); msg != "" {
		t.Errorf("golden: output mismatch for %q:\n%s", path, msg)
	}
}

func writeExpectation(t *testing.T, path, got string) {
	t.Helper()
	if got == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: removing %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
		t.Errorf("golden: writing %q: %v", path, err)
	}
}

// Diff compares byte for byte and renders a unified diff on mismatch.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: cannot determine the calling test file")
	}
	return filepath.Dir(file)
}
