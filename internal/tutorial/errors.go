package tutorial

import (
	"errors"
	"fmt"
)

var (
	// ErrRootNotFound is returned when the tutorial root is missing,
	// unreadable, or not a directory.
	ErrRootNotFound = errors.New("tutorial root not found")

	// ErrUnparseablePath is returned when a candidate directory path does not
	// contain two adjacent numeric components. It aborts the run.
	ErrUnparseablePath = errors.New("unparseable tutorial path")
)

// PathError records the candidate directory that failed number extraction.
type PathError struct {
	Path string
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s does not contain <section>/<subsection> digits", ErrUnparseablePath, e.Path)
}

// Unwrap returns ErrUnparseablePath.
func (e *PathError) Unwrap() error {
	return ErrUnparseablePath
}
