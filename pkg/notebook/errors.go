package notebook

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotFound    = errors.New("does not exist")
	ErrExists      = errors.New("already exists")
	ErrInvalidName = errors.New("invalid name")
)

// Error records a failed filesystem operation on a notebook or note.
type Error struct {
	Op       string
	Notebook string
	Note     string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Note != "":
		return fmt.Sprintf("%s %q in notebook %q: %v", e.Op, e.Note, e.Notebook, e.Err)
	case e.Notebook != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Notebook, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
