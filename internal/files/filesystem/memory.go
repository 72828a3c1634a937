package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is a file or directory. Directories keep child names in
// insertion order, which is the listing order ReadDirNames reports.
type memoryNode struct {
	info     memoryFileInfo
	children []string
}

// MemoryFileSystem is an in-memory backend for tests.
// Paths use forward slashes; relative paths resolve against the root.
// It records every operation it serves and can inject failures per path.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu       sync.Mutex
	root     string
	nodes    map[string]*memoryNode
	failures map[string]opFailure
	journal  []string
	hook     func(op, p string)
}

type opFailure struct {
	op  string
	err error
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root
// directory and all of its ancestors exist.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = virtualPath("/", root)
	mfs := &MemoryFileSystem{
		root:     root,
		nodes:    make(map[string]*memoryNode),
		failures: make(map[string]opFailure),
	}
	mfs.nodes["/"] = &memoryNode{info: memoryFileInfo{
		name:    "/",
		mode:    fs.ModeDir | 0755,
		modTime: time.Now(),
	}}
	mfs.ensureDirectoriesExist(root, time.Now())
	return mfs
}

// Root returns the directory relative paths resolve against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a regular file, creating missing parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := virtualPath(mfs.root, filePath)
	mfs.ensureDirectoriesExist(path.Dir(absPath), modTime)
	mfs.insert(absPath, memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(content)),
		mode:    0644,
		modTime: modTime,
	})
}

// AddDir adds a directory and any missing parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.ensureDirectoriesExist(virtualPath(mfs.root, dirPath), time.Now())
}

// FailWith makes subsequent op operations on p return err wrapped in an
// *fs.PathError. An empty op matches every operation.
// Operation names are "stat", "exists", "readdir" and "mkdir".
func (mfs *MemoryFileSystem) FailWith(op, p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.failures[virtualPath(mfs.root, p)] = opFailure{op: op, err: err}
}

// Deny makes every subsequent operation on p fail with fs.ErrPermission.
func (mfs *MemoryFileSystem) Deny(p string) {
	mfs.FailWith("", p, fs.ErrPermission)
}

// SetHook installs fn to run before every operation, outside the internal
// lock, so it may mutate the filesystem to simulate concurrent writers.
func (mfs *MemoryFileSystem) SetHook(fn func(op, p string)) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.hook = fn
}

// enter runs the hook and then takes the lock. Callers must unlock.
func (mfs *MemoryFileSystem) enter(op, p string) {
	mfs.mu.Lock()
	hook := mfs.hook
	mfs.mu.Unlock()
	if hook != nil {
		hook(op, virtualPath(mfs.root, p))
	}
	mfs.mu.Lock()
}

// Journal returns the operations served so far, e.g. "mkdir /tmp/x/a".
func (mfs *MemoryFileSystem) Journal() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	return append([]string(nil), mfs.journal...)
}

// ResetJournal clears the recorded operations.
func (mfs *MemoryFileSystem) ResetJournal() {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.journal = nil
}

// ensureDirectoriesExist creates dir and every missing ancestor.
// Caller must hold mu (or be the constructor).
func (mfs *MemoryFileSystem) ensureDirectoriesExist(dir string, modTime time.Time) {
	if _, exists := mfs.nodes[dir]; exists {
		return
	}
	mfs.ensureDirectoriesExist(path.Dir(dir), modTime)
	mfs.insert(dir, memoryFileInfo{
		name:    path.Base(dir),
		mode:    fs.ModeDir | 0755,
		modTime: modTime,
	})
}

// insert links a new node under its parent. Caller must hold mu.
func (mfs *MemoryFileSystem) insert(absPath string, info memoryFileInfo) {
	if _, exists := mfs.nodes[absPath]; !exists {
		parent := mfs.nodes[path.Dir(absPath)]
		parent.children = append(parent.children, info.name)
	}
	mfs.nodes[absPath] = &memoryNode{info: info}
}

// begin resolves p, records op and returns any injected failure.
// Caller must hold mu.
func (mfs *MemoryFileSystem) begin(op, p string) (string, error) {
	absPath := virtualPath(mfs.root, p)
	mfs.journal = append(mfs.journal, fmt.Sprintf("%s %s", op, absPath))
	if f, failing := mfs.failures[absPath]; failing && (f.op == "" || f.op == op) {
		return absPath, &fs.PathError{Op: op, Path: p, Err: f.err}
	}
	return absPath, nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.enter("stat", statPath)
	defer mfs.mu.Unlock()

	absPath, err := mfs.begin("stat", statPath)
	if err != nil {
		return nil, err
	}
	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	info := node.info
	return &info, nil
}

func (mfs *MemoryFileSystem) Exists(existsPath string) (bool, error) {
	mfs.enter("exists", existsPath)
	defer mfs.mu.Unlock()

	absPath, err := mfs.begin("exists", existsPath)
	if err != nil {
		return false, err
	}
	_, exists := mfs.nodes[absPath]
	return exists, nil
}

func (mfs *MemoryFileSystem) ReadDirNames(dirPath string) ([]string, error) {
	mfs.enter("readdir", dirPath)
	defer mfs.mu.Unlock()

	absPath, err := mfs.begin("readdir", dirPath)
	if err != nil {
		return nil, err
	}
	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !node.info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: errNotDir}
	}
	return append([]string{}, node.children...), nil
}

func (mfs *MemoryFileSystem) Mkdir(dirPath string, mode fs.FileMode) error {
	mfs.enter("mkdir", dirPath)
	defer mfs.mu.Unlock()

	absPath, err := mfs.begin("mkdir", dirPath)
	if err != nil {
		return err
	}
	if _, exists := mfs.nodes[absPath]; exists {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrExist}
	}
	parent, exists := mfs.nodes[path.Dir(absPath)]
	if !exists {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !parent.info.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: errNotDir}
	}
	mfs.insert(absPath, memoryFileInfo{
		name:    path.Base(absPath),
		mode:    fs.ModeDir | mode.Perm(),
		modTime: time.Now(),
	})
	return nil
}
