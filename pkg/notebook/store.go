// Package notebook stores notebooks and notes as plain files.
//
// Layout on disk:
//
//	<root>/<notebook>/<title>.txt
//
// A notebook is a directory and a note is a text file with no header or
// metadata. The store keeps no cache: every call goes to the filesystem, so
// changes made by other programs show up on the next listing.
package notebook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanderheijden86/notebook/pkg/debug"
)

// NoteExt is appended to a note title to form its filename.
const NoteExt = ".txt"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is a filesystem-backed notebook store rooted at one base directory.
type Store struct {
	root string
}

// New returns a store rooted at root. The directory is not created until Init.
func New(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Root returns the base directory.
func (s *Store) Root() string {
	return s.root
}

// Init creates the base directory if it does not exist.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		return &Error{Op: "create base directory", Err: err}
	}
	return nil
}

// NotebookPath returns the directory of the named notebook.
func (s *Store) NotebookPath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// NotePath returns the file of the given note.
func (s *Store) NotePath(notebook, title string) (string, error) {
	dir, err := s.NotebookPath(notebook)
	if err != nil {
		return "", err
	}
	if err := ValidateTitle(title); err != nil {
		return "", err
	}
	return filepath.Join(dir, title+NoteExt), nil
}

// ListNotebooks returns the notebooks under the base directory in
// directory-enumeration order. Plain files in the base directory are skipped.
func (s *Store) ListNotebooks() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Op: "list notebooks", Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	debug.Log("listed %d notebooks in %s", len(names), s.root)
	return names, nil
}

// NotebookExists reports whether the named notebook directory exists.
// Invalid names never exist.
func (s *Store) NotebookExists(name string) bool {
	dir, err := s.NotebookPath(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// CreateNotebook creates the notebook directory. It returns ErrExists when
// something with that name is already present.
func (s *Store) CreateNotebook(name string) error {
	dir, err := s.NotebookPath(name)
	if err != nil {
		return err
	}
	if err := os.Mkdir(dir, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return &Error{Op: "create notebook", Notebook: name, Err: err}
	}
	return nil
}

// ListNotes returns the titles of the notes in a notebook, extension
// stripped, in directory-enumeration order.
func (s *Store) ListNotes(notebook string) ([]string, error) {
	dir, err := s.NotebookPath(notebook)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &Error{Op: "list notes", Notebook: notebook, Err: err}
	}

	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), NoteExt) {
			continue
		}
		titles = append(titles, strings.TrimSuffix(e.Name(), NoteExt))
	}
	return titles, nil
}

// NoteExists reports whether the note file exists.
func (s *Store) NoteExists(notebook, title string) bool {
	path, err := s.NotePath(notebook, title)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateNote creates an empty note. It returns ErrExists if the note is
// already there and ErrNotFound if the notebook is missing.
func (s *Store) CreateNote(notebook, title string) error {
	path, err := s.NotePath(notebook, title)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return ErrExists
		case errors.Is(err, fs.ErrNotExist):
			return ErrNotFound
		}
		return &Error{Op: "create note", Notebook: notebook, Note: title, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "create note", Notebook: notebook, Note: title, Err: err}
	}
	return nil
}

// ReadNote returns the full content of a note.
func (s *Store) ReadNote(notebook, title string) (string, error) {
	path, err := s.NotePath(notebook, title)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", &Error{Op: "read note", Notebook: notebook, Note: title, Err: err}
	}
	return string(data), nil
}

// WriteNote replaces the content of a note. The note is created if needed,
// but the notebook must exist.
func (s *Store) WriteNote(notebook, title, content string) error {
	path, err := s.NotePath(notebook, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return &Error{Op: "write note", Notebook: notebook, Note: title, Err: err}
	}
	debug.Log("wrote %d bytes to %s", len(content), path)
	return nil
}

// DeleteNote removes a note file.
func (s *Store) DeleteNote(notebook, title string) error {
	path, err := s.NotePath(notebook, title)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return &Error{Op: "delete note", Notebook: notebook, Note: title, Err: err}
	}
	return nil
}
