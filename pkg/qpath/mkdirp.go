package qpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Mkdirp creates every missing directory along the wrapped path using
// DefaultDirMode and returns the receiver for chaining.
func (p *PathEntry) Mkdirp() (*PathEntry, error) {
	return p.MkdirpMode(DefaultDirMode)
}

// MkdirpMode is Mkdirp with an explicit creation mode.
//
// Segments are walked root to leaf. Existing segments are skipped; once one
// segment had to be created, every later segment is created without an
// existence check. A segment that appears between the check and the create
// is accepted if it is a directory. The first failure aborts the walk.
func (p *PathEntry) MkdirpMode(mode fs.FileMode) (*PathEntry, error) {
	current := ""
	mustCreate := false

	for _, segment := range Segments(p.path) {
		current = p.ops.Join(current, segment)

		if !mustCreate {
			exists, err := p.fs.Exists(current)
			if err != nil {
				return nil, newPathError(OpExists, current, err)
			}
			if exists {
				continue
			}
			mustCreate = true
		} else {
			p.logger.Verbose("skip exists check %s", current)
		}

		if err := p.createDir(current, mode); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PathEntry) createDir(dir string, mode fs.FileMode) error {
	p.logger.Verbose("mkdir %s (%s)", dir, mode)
	err := p.fs.Mkdir(dir, mode)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, statErr := p.fs.Stat(dir); statErr == nil && info.IsDir() {
			p.logger.Verbose("mkdir %s: created concurrently", dir)
			return nil
		}
	}
	return newPathError(OpMkdir, dir, err)
}

// Segments splits path into root-to-leaf segments. An absolute path keeps
// its root (volume name plus separator) as the first segment; empty
// segments from repeated or trailing separators are dropped.
//
//	Segments("/tmp/x/a") // ["/", "tmp", "x", "a"]
//	Segments("a//b/")    // ["a", "b"]
func Segments(path string) []string {
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]

	var segments []string
	root := volume
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root += string(filepath.Separator)
	}
	if root != "" {
		segments = append(segments, root)
	}

	for _, name := range strings.FieldsFunc(rest, isSeparator) {
		segments = append(segments, name)
	}
	return segments
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
