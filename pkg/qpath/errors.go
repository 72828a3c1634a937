package qpath

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors classifying filesystem failures.
// Every error returned by a PathEntry operation matches exactly one of the
// first four via errors.Is().
//
// Example usage:
//
//	_, err := qpath.New(root).ReadStats()
//	if errors.Is(err, qpath.ErrNotFound) {
//	    // Handle a missing root or an entry removed mid-scan
//	}
var (
	// ErrNotFound indicates the path or one of its segments does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the backend refused access.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAlreadyExists indicates a creation target exists and is not a directory.
	ErrAlreadyExists = errors.New("already exists")

	// ErrIOFailure covers every other backend failure.
	ErrIOFailure = errors.New("i/o failure")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")
)

// Operation names recorded in PathError.Op.
const (
	OpStat    = "stat"
	OpReadDir = "readdir"
	OpExists  = "exists"
	OpMkdir   = "mkdir"
)

// PathError records the operation and path that failed, the classified kind
// and the untouched backend error.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the backend error, so
// errors.Is matches qpath sentinels as well as fs.ErrNotExist and friends.
func (e *PathError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newPathError(op, path string, err error) *PathError {
	return &PathError{
		Op:   op,
		Path: path,
		Kind: classify(err),
		Err:  err,
	}
}

// classify maps a backend error onto one of the qpath sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	default:
		return ErrIOFailure
	}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrIOFailure):
		return ExitIOFailure
	}

	return ExitGeneralError
}
