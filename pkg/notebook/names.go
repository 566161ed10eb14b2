package notebook

import (
	"fmt"
	"strings"
)

// maxNameBytes is the common filename limit on Linux, macOS and Windows.
const maxNameBytes = 255

// ValidateName checks that a notebook name can be used as a single path
// segment under the base directory.
func ValidateName(name string) error {
	return validateSegment(name, maxNameBytes)
}

// ValidateTitle checks that a note title plus NoteExt fits in one path segment.
func ValidateTitle(title string) error {
	return validateSegment(title, maxNameBytes-len(NoteExt))
}

func validateSegment(s string, limit int) error {
	switch {
	case strings.TrimSpace(s) == "":
		return fmt.Errorf("%w: must not be empty", ErrInvalidName)
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, s)
	case strings.ContainsRune(s, 0):
		return fmt.Errorf("%w: must not contain NUL bytes", ErrInvalidName)
	case len(s) > limit:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, limit)
	}
	return nil
}
