package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.txt")
	os.WriteFile(filePath, []byte("hello"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "test.txt" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "test.txt")
	}
	if info.Size() != 5 {
		t.Errorf("Stat().Size() = %d, want 5", info.Size())
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	osfs := NewOSFileSystem()

	_, err := osfs.Stat(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Exists(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "present"), nil, 0644)

	fs := NewOSFileSystem()

	ok, err := fs.Exists(filepath.Join(dir, "present"))
	if err != nil || !ok {
		t.Errorf("Exists(present) = %v, %v; want true, nil", ok, err)
	}

	ok, err = fs.Exists(filepath.Join(dir, "absent"))
	if err != nil || ok {
		t.Errorf("Exists(absent) = %v, %v; want false, nil", ok, err)
	}
}

func TestOSFileSystem_ReadDirNames(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.txt
	//     sub/
	//       b.txt
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(sub, "b.txt"), []byte("b"), 0644)

	fs := NewOSFileSystem()

	names, err := fs.ReadDirNames(dir)
	if err != nil {
		t.Fatalf("ReadDirNames() error = %v", err)
	}

	// Directory order is platform-defined; compare as a set.
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a.txt" || names[1] != "sub" {
		t.Errorf("ReadDirNames() = %v, want [a.txt sub]", names)
	}
}

func TestOSFileSystem_ReadDirNames_Empty(t *testing.T) {
	fs := NewOSFileSystem()

	names, err := fs.ReadDirNames(t.TempDir())
	if err != nil {
		t.Fatalf("ReadDirNames() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ReadDirNames(empty) = %v, want none", names)
	}
}

func TestOSFileSystem_ReadDirNames_Nonexistent(t *testing.T) {
	osfs := NewOSFileSystem()

	_, err := osfs.ReadDirNames(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDirNames(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Mkdir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "created")
	osfs := NewOSFileSystem()

	if err := osfs.Mkdir(target, 0755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("Mkdir() did not create a directory: %v", err)
	}

	if err := osfs.Mkdir(target, 0755); !errors.Is(err, fs.ErrExist) {
		t.Errorf("second Mkdir() error = %v, want fs.ErrExist", err)
	}
}

func TestOSFileSystem_Mkdir_MissingParent(t *testing.T) {
	osfs := NewOSFileSystem()

	err := osfs.Mkdir(filepath.Join(t.TempDir(), "a", "b"), 0755)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Mkdir(missing parent) error = %v, want fs.ErrNotExist", err)
	}
}
