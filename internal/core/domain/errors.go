package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRoots indicates no snippet root directory is configured.
	ErrNoRoots = errors.New("no snippet roots configured")

	// ErrRootUnreadable indicates a root directory could not be enumerated.
	// This is the only failure that aborts a scan.
	ErrRootUnreadable = errors.New("root directory unreadable")

	// ErrInvalidEncoding indicates a file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")

	// ErrMetadataParse indicates a front-matter block could not be parsed.
	// It is reported as a warning, never as a document failure.
	ErrMetadataParse = errors.New("metadata parse failed")
)

// FileError records a failure for a single path during a scan.
// It never aborts sibling work.
type FileError struct {
	// Path is the absolute path of the file or directory that failed.
	Path string `json:"path"`

	// Err is the underlying cause.
	Err error `json:"-"`
}

// Error implements error.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}
