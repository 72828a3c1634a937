package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

// OSFileSystem implements the backend on top of the os package.
// Errors are returned exactly as the os package reports them.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem backend
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadDirNames returns names in directory order. Unlike os.ReadDir the
// result is not sorted.
func (p *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (p *OSFileSystem) Mkdir(path string, mode fs.FileMode) error {
	return os.Mkdir(path, mode)
}
