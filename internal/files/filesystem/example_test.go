package filesystem_test

import (
	"embed"
	"fmt"
	"log"

	"github.com/vvka-141/qpath/internal/files/filesystem"
	"github.com/vvka-141/qpath/pkg/qpath"
)

//go:embed testdata
var exampleFS embed.FS

// Every backend satisfies the qpath contract.
var (
	_ qpath.FileSystem = (*filesystem.OSFileSystem)(nil)
	_ qpath.FileSystem = (*filesystem.MemoryFileSystem)(nil)
	_ qpath.FileSystem = (*filesystem.EmbedFileSystem)(nil)
)

// Example_embedFileSystem demonstrates scanning embedded resources through a PathEntry
func Example_embedFileSystem() {
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")

	stats, err := qpath.New("tree", qpath.WithFileSystem(efs)).ReadStats()
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range stats {
		fmt.Printf("%d %s dir=%v\n", s.Level, s.RelativePath, s.IsDir())
	}

	// Output:
	// 0 d dir=true
	// 1 d/g.txt dir=false
	// 0 f.txt dir=false
}

// Example_memoryFileSystem demonstrates mkdirp against an in-memory backend
func Example_memoryFileSystem() {
	mfs := filesystem.NewMemoryFileSystem("/tmp/x")

	entry := qpath.New("/tmp/x/a/b", qpath.WithFileSystem(mfs))
	if _, err := entry.Mkdirp(); err != nil {
		log.Fatal(err)
	}

	for _, op := range mfs.Journal() {
		fmt.Println(op)
	}

	// Output:
	// exists /
	// exists /tmp
	// exists /tmp/x
	// exists /tmp/x/a
	// mkdir /tmp/x/a
	// mkdir /tmp/x/a/b
}
