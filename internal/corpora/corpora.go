// Package corpora runs filesystem-driven test corpora: table-driven tests
// where the "table" is a directory of input files, each with expected
// output files next to it.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Corpus describes one test data corpus. Every file under Root whose
// extension matches Extension is one test case; its expected outputs live
// in sibling files named after the case plus an output extension.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable checked for a refresh request. When set to a
	// glob, the expected output files of matching cases are rewritten from
	// the actual outputs and the run fails, so refreshed expectations are
	// never committed blind.
	Refresh string

	// The file extension (without a dot) of files that define a test case,
	// e.g. "toks".
	Extension string

	// Possible outputs of the test. A missing output file means that
	// output is expected to be empty.
	Outputs []Output

	// Test executes one case and returns one string per element of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents one expected output of a test case. For a corpus with
// Extension "toks" and an output with Extension "attr.txt", the case
// "foo.toks" is compared against "foo.toks.attr.txt".
type Output struct {
	Extension string

	// The comparison function for this output. Nil compares byte for byte
	// and renders mismatches as a unified diff.
	Compare Compare
}

// Compare is a comparison function between strings. It returns "" when
// the values match and an error message otherwise.
type Compare func(got, want string) string

// Run executes every case of the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(callerDir(0), c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: error while walking %q: %v", root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid refresh glob %q", refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		name, _ := filepath.Rel(root, path)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, corpus declares %d", len(results), len(c.Outputs))
			}

			doRefresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(path, ".", output.Extension)
				if doRefresh {
					c.refreshOutput(t, outPath, results[i])
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", outPath, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = DiffCompare
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, msg)
				}
			}
		})
	}
}

func (c Corpus) refreshOutput(t *testing.T, path, text string) {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o660); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

// DiffCompare compares byte for byte and renders mismatches as a unified
// diff.
func DiffCompare(got, want string) string {
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
		return err.Error()
	}
	return diff
}

// YAMLCompare parses both values as YAML and compares the decoded
// documents, so expected output files do not have to match formatting
// exactly.
func YAMLCompare(got, want string) string {
	var gotDoc, wantDoc any
	if err := yaml.Unmarshal([]byte(got), &gotDoc); err != nil {
		return fmt.Sprintf("actual output is not valid YAML: %v", err)
	}
	if err := yaml.Unmarshal([]byte(want), &wantDoc); err != nil {
		return fmt.Sprintf("expected output is not valid YAML: %v", err)
	}
	if diff := cmp.Diff(wantDoc, gotDoc); diff != "" {
		return diff
	}
	return ""
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
