// Package testutil provides notebook tree fixtures and assertions shared by
// the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// noteExt mirrors notebook.NoteExt. testutil must not import the packages it
// helps test.
const noteExt = ".txt"

// Tree describes a base directory: notebook name -> note title -> content.
// A notebook with a nil or empty map is an empty directory.
type Tree map[string]map[string]string

// Seed writes tree under root, creating root if needed.
func Seed(t testing.TB, root string, tree Tree) {
	t.Helper()

	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	for notebook, notes := range tree {
		dir := filepath.Join(root, notebook)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create notebook %q: %v", notebook, err)
		}
		for title, content := range notes {
			path := filepath.Join(dir, title+noteExt)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("failed to write note %q: %v", path, err)
			}
		}
	}
}

// Snapshot reads the notebooks and notes currently under root. Files that are
// not notes are skipped.
func Snapshot(t testing.TB, root string) Tree {
	t.Helper()

	tree := Tree{}
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return tree
	}
	if err != nil {
		t.Fatalf("failed to read base dir: %v", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		notes := map[string]string{}
		files, err := os.ReadDir(filepath.Join(root, e.Name()))
		if err != nil {
			t.Fatalf("failed to read notebook %q: %v", e.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), noteExt) {
				continue
			}
			data, err := os.ReadFile(filepath.Join(root, e.Name(), f.Name()))
			if err != nil {
				t.Fatalf("failed to read note: %v", err)
			}
			notes[strings.TrimSuffix(f.Name(), noteExt)] = string(data)
		}
		tree[e.Name()] = notes
	}
	return tree
}

// AssertTree verifies that root holds exactly want.
func AssertTree(t testing.TB, root string, want Tree) {
	t.Helper()
	if diff := cmp.Diff(want, Snapshot(t, root), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("notebook tree mismatch (-want +got):\n%s", diff)
	}
}

// AssertNote verifies the content of a single note.
func AssertNote(t testing.TB, root, notebook, title, want string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, notebook, title+noteExt))
	if err != nil {
		t.Fatalf("note %s/%s: %v", notebook, title, err)
	}
	if string(data) != want {
		t.Errorf("note %s/%s = %q, want %q", notebook, title, data, want)
	}
}

// AssertNoNote verifies that a note file is absent.
func AssertNoNote(t testing.TB, root, notebook, title string) {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, notebook, title+noteExt))
	if err == nil {
		t.Errorf("note %s/%s should not exist", notebook, title)
	} else if !os.IsNotExist(err) {
		t.Errorf("stat note %s/%s: %v", notebook, title, err)
	}
}
