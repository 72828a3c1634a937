package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// errNotDir is reported when a listing or creation needs a directory and
// finds something else.
var errNotDir = errors.New("not a directory")

// virtualPath normalizes p to a slash-separated, cleaned path. Relative
// paths are resolved against root.
func virtualPath(root, p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return root
	}
	if !strings.HasPrefix(p, "/") {
		p = path.Join(root, p)
	}
	return path.Clean(p)
}
