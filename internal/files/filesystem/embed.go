package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem is a read-only backend over an fs.FS such as embed.FS.
// Paths are resolved relative to root inside the FS; a leading "/" refers
// to the FS root itself. Mkdir always fails with fs.ErrPermission.
type EmbedFileSystem struct {
	fsys fs.FS
	root string // root path within fsys (always uses forward slashes)
}

// NewEmbedFileSystem creates a new backend wrapping fsys.
// The root parameter specifies the subdirectory within fsys to treat as the root.
// All paths are normalized to use forward slashes for consistency with fs.FS.
func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	return &EmbedFileSystem{
		fsys: fsys,
		root: strings.TrimPrefix(root, "/"),
	}
}

// resolve maps p onto a valid fs.FS name.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	switch {
	case p == "" || p == ".":
		p = efs.root
	case strings.HasPrefix(p, "/"):
		p = path.Clean(strings.TrimPrefix(p, "/"))
	default:
		p = path.Join(efs.root, p)
	}
	if p == "" {
		return "."
	}
	return p
}

func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	return fs.Stat(efs.fsys, efs.resolve(statPath))
}

func (efs *EmbedFileSystem) Exists(existsPath string) (bool, error) {
	_, err := fs.Stat(efs.fsys, efs.resolve(existsPath))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadDirNames lists children in the order fs.ReadDir returns them, which
// for embed.FS is sorted by name.
func (efs *EmbedFileSystem) ReadDirNames(dirPath string) ([]string, error) {
	entries, err := fs.ReadDir(efs.fsys, efs.resolve(dirPath))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (efs *EmbedFileSystem) Mkdir(dirPath string, mode fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrPermission}
}
