// Package filesystem provides the filesystem backends a qpath.PathEntry
// operates on.
//
// Every backend offers the same four primitives: Stat, Exists,
// ReadDirNames (unsorted, in backend listing order) and Mkdir. Failures are
// reported as *fs.PathError values wrapping fs.ErrNotExist, fs.ErrPermission
// or fs.ErrExist so callers can classify them.
//
// Implementations:
//   - OSFileSystem: Production implementation using the os package
//   - MemoryFileSystem: In-memory implementation for testing, with
//     insertion-order listings, an operation journal and fault injection
//   - EmbedFileSystem: Read-only implementation over embed.FS or any fs.FS
package filesystem
