package qpath

import (
	"sync"

	"github.com/vvka-141/qpath/internal/files/filesystem"
	"github.com/vvka-141/qpath/internal/logging"
)

// PathEntry wraps one filesystem path. The path is never normalized or
// mutated after construction. PathEntry owns no filesystem resources and is
// safe for concurrent use; independent operations share no mutable state
// beyond the memoized basename and dirname.
type PathEntry struct {
	path   string
	fs     FileSystem
	ops    PathOps
	logger Logger

	baseOnce sync.Once
	basename string

	dirOnce sync.Once
	dirname string
}

// Option configures a PathEntry at construction.
type Option func(*PathEntry)

// WithFileSystem sets the filesystem backend.
// Panics if fsys is nil.
func WithFileSystem(fsys FileSystem) Option {
	if fsys == nil {
		panic("filesystem cannot be nil")
	}
	return func(p *PathEntry) { p.fs = fsys }
}

// WithPathOps sets the path-manipulation utility.
// Panics if ops is nil.
func WithPathOps(ops PathOps) Option {
	if ops == nil {
		panic("path ops cannot be nil")
	}
	return func(p *PathEntry) { p.ops = ops }
}

// WithLogger sets the logger receiving per-step diagnostics.
// Panics if logger is nil.
func WithLogger(logger Logger) Option {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return func(p *PathEntry) { p.logger = logger }
}

// New wraps path. Uses the OS filesystem, path/filepath and a discarding
// logger unless overridden by opts.
func New(path string, opts ...Option) *PathEntry {
	p := &PathEntry{
		path:   path,
		fs:     filesystem.NewOSFileSystem(),
		ops:    DefaultPathOps(),
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the path exactly as supplied to New.
func (p *PathEntry) Path() string { return p.path }

// String implements fmt.Stringer.
func (p *PathEntry) String() string { return p.path }

// Basename returns the final path segment. Computed on first call.
func (p *PathEntry) Basename() string {
	p.baseOnce.Do(func() {
		p.basename = p.ops.Base(p.path)
	})
	return p.basename
}

// Dirname returns everything preceding the final segment. Computed on first call.
func (p *PathEntry) Dirname() string {
	p.dirOnce.Do(func() {
		p.dirname = p.ops.Dir(p.path)
	})
	return p.dirname
}

// Exists reports whether the wrapped path exists.
func (p *PathEntry) Exists() (bool, error) {
	p.logger.Verbose("exists %s", p.path)
	ok, err := p.fs.Exists(p.path)
	if err != nil {
		return false, newPathError(OpExists, p.path, err)
	}
	return ok, nil
}
