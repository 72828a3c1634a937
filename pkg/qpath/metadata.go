package qpath

import (
	"io/fs"
	"time"
)

// EntryMetadata is a stat result decorated with its position in a scan.
// Records are created fresh for every call and owned by the caller.
type EntryMetadata struct {
	// Info is the raw metadata reported by the backend.
	Info fs.FileInfo

	// Level is the depth below the scan root; direct children are 0.
	Level int

	// Name is the segment relative to the immediate parent.
	Name string

	// RelativePath is the path relative to the scan root.
	RelativePath string

	// AbsolutePath is the scan root joined with RelativePath.
	AbsolutePath string
}

func (m *EntryMetadata) IsDir() bool        { return m.Info.IsDir() }
func (m *EntryMetadata) IsRegular() bool    { return m.Info.Mode().IsRegular() }
func (m *EntryMetadata) Size() int64        { return m.Info.Size() }
func (m *EntryMetadata) Mode() fs.FileMode  { return m.Info.Mode() }
func (m *EntryMetadata) ModTime() time.Time { return m.Info.ModTime() }
