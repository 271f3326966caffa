package files_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/golessons/lessons/files"
)

// ExampleWriteLines: the round trip through a buffered writer and a
// scanner, inside a throwaway directory.
func ExampleWriteLines() {
	dir, _ := os.MkdirTemp("", "files-example-")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "notes.txt")

	_ = files.WriteLines(path, []string{"alpha", "beta", "gamma"})
	lines, _ := files.ReadLines(path)
	fmt.Println(lines)
	// Output:
	// [alpha beta gamma]
}

func ExampleListTree() {
	dir, _ := os.MkdirTemp("", "files-example-")
	defer os.RemoveAll(dir)
	_ = os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755)
	_ = os.WriteFile(filepath.Join(dir, "a", "b", "deep.txt"), []byte("x"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "top.txt"), []byte("y"), 0o644)

	tree, _ := files.ListTree(dir)
	for _, entry := range tree {
		fmt.Println(entry)
	}
	// Output:
	// a/
	// a/b/
	// a/b/deep.txt
	// top.txt
}
