// Package files is lesson 20: working with the filesystem.
//
// What
//
//   - Whole-file convenience: os.WriteFile and os.ReadFile.
//   - Line-oriented I/O: bufio.Writer with a Flush, bufio.Scanner.
//   - Appending with os.OpenFile and flag bits.
//   - Paths with path/filepath; trees with filepath.WalkDir.
//   - Temp dirs as sandboxes, and fs.ErrNotExist checks.
//
// Every demonstration runs inside a fresh temp directory and removes it
// afterwards, so the lesson leaves no droppings.
package files
