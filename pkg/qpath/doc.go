// Package qpath wraps a single filesystem path with a small set of
// convenience operations.
//
// A PathEntry exposes:
//   - identity accessors (Basename, Dirname), computed at most once
//   - single-entry metadata (Stat) and existence checks (Exists)
//   - recursive pre-order metadata collection for a whole subtree (ReadStats)
//   - recursive directory creation with "mkdir -p" semantics (Mkdirp)
//
// Every operation has a blocking form returning (result, error) and an
// asynchronous form (the Async suffix) that runs the same core on its own
// goroutine and delivers (result, error) to a callback exactly once.
//
// The filesystem backend and the path utility are pluggable through
// WithFileSystem and WithPathOps; the defaults are the OS filesystem and
// path/filepath.
//
// Example:
//
//	entry := qpath.New("/tmp/x/a/b/c")
//	if _, err := entry.Mkdirp(); err != nil {
//	    return err
//	}
//	stats, err := qpath.New("/tmp/x").ReadStats()
//	if errors.Is(err, qpath.ErrNotFound) {
//	    // root vanished
//	}
package qpath
