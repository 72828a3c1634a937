package qpath

import (
	"io/fs"
	"path/filepath"
)

// FileSystem is the filesystem access layer a PathEntry operates on.
// Implementations must return errors that match fs.ErrNotExist,
// fs.ErrPermission and fs.ErrExist where applicable so failures can be
// classified.
type FileSystem interface {
	// Stat returns metadata for path, following symlinks the way the
	// backend's stat facility does.
	Stat(path string) (fs.FileInfo, error)

	// Exists reports whether path exists. A missing path is (false, nil);
	// any other failure is returned as an error.
	Exists(path string) (bool, error)

	// ReadDirNames lists the names of the immediate children of path in
	// the order the backend returns them. No sorting is applied.
	ReadDirNames(path string) ([]string, error)

	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string, mode fs.FileMode) error
}

// PathOps is the path-manipulation utility used by PathEntry.
type PathOps interface {
	Base(path string) string
	Dir(path string) string
	Join(elem ...string) string
}

// Logger provides a pluggable logging interface for qpath operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

// filepathOps implements PathOps with path/filepath.
type filepathOps struct{}

func (filepathOps) Base(path string) string    { return filepath.Base(path) }
func (filepathOps) Dir(path string) string     { return filepath.Dir(path) }
func (filepathOps) Join(elem ...string) string { return filepath.Join(elem...) }

// DefaultPathOps returns the path/filepath backed PathOps.
func DefaultPathOps() PathOps {
	return filepathOps{}
}
