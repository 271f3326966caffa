package files

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/golessons/curriculum"
)

// WriteLines writes lines to path through a buffered writer, one per
// line. The deferred close surfaces its error only when nothing else
// failed first.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("files: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadLines returns the lines of path without their newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("files: open: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// AppendLine adds one line to path, creating the file if needed.
func AppendLine(path, line string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("files: append: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = fmt.Fprintln(f, line)
	return err
}

// CopyFile copies src to dst, returning the bytes written.
func CopyFile(dst, src string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("files: copy open: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("files: copy create: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return io.Copy(out, in)
}

// ListTree walks root and returns slash-separated paths relative to it,
// directories suffixed with "/". WalkDir visits lexically, so the result
// is already deterministic.
func ListTree(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	return out, err
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   20,
		Slug:     "files",
		Title:    "Files and paths",
		Part:     curriculum.PartStdlib,
		Synopsis: "os and bufio I/O, filepath, WalkDir, temp sandboxes",
		Topics:   []string{"os", "bufio", "filepath", "WalkDir", "temp dir"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration. Absolute temp paths never reach
// the output, keeping it identical across machines.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Files and paths")

	dir, err := os.MkdirTemp("", "golessons-files-")
	if err != nil {
		return fmt.Errorf("files: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	join := func(rel string) string { return filepath.Join(dir, rel) }

	nb.Step("A temp dir as sandbox")
	nb.Say("os.MkdirTemp picked a unique directory; everything below lives")
	nb.Say("there and one deferred RemoveAll reclaims it, error or not.")

	nb.Step("Whole files in one call")
	if err := os.WriteFile(join("hello.txt"), []byte("hello, filesystem\n"), 0o644); err != nil {
		return err
	}
	data, err := os.ReadFile(join("hello.txt"))
	if err != nil {
		return err
	}
	nb.Sayf("WriteFile + ReadFile -> %q", string(data))
	info, err := os.Stat(join("hello.txt"))
	if err != nil {
		return err
	}
	nb.Sayf("os.Stat: size=%d bytes, IsDir=%v", info.Size(), info.IsDir())

	nb.Step("Lines through bufio")
	if err := WriteLines(join("fruits.txt"), []string{"apple", "banana", "cherry"}); err != nil {
		return err
	}
	lines, err := ReadLines(join("fruits.txt"))
	if err != nil {
		return err
	}
	nb.Sayf("WriteLines/ReadLines -> %v", lines)
	nb.Say("The Writer buffers 4KB by default; forgetting Flush is the")
	nb.Say("classic short-file bug. Scanner strips the newlines coming back.")

	nb.Step("Appending")
	if err := AppendLine(join("fruits.txt"), "date"); err != nil {
		return err
	}
	lines, err = ReadLines(join("fruits.txt"))
	if err != nil {
		return err
	}
	nb.Sayf("after AppendLine -> %d lines, last %q", len(lines), lines[len(lines)-1])
	nb.Say("O_APPEND|O_CREATE|O_WRONLY: the flag bits compose the open mode")
	nb.Say("the way Permission flags composed in the enums lesson.")

	nb.Step("Copying")
	n, err := CopyFile(join("fruits.bak"), join("fruits.txt"))
	if err != nil {
		return err
	}
	nb.Sayf("CopyFile -> %d bytes", n)

	nb.Step("filepath speaks the local separator")
	nb.Sayf("Join(\"data\", \"raw\", \"a.csv\") -> %s", filepath.Join("data", "raw", "a.csv"))
	nb.Sayf("Base -> %s, Ext -> %s, Dir -> %s",
		filepath.Base("data/raw/a.csv"), filepath.Ext("data/raw/a.csv"), filepath.Dir("data/raw/a.csv"))

	nb.Step("Walking a tree")
	for _, rel := range []string{"src/main.go", "src/util/io.go", "docs/guide.md"} {
		p := join(rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte("x\n"), 0o644); err != nil {
			return err
		}
	}
	tree, err := ListTree(dir)
	if err != nil {
		return err
	}
	for _, entry := range tree {
		nb.Sayf("  %s", entry)
	}
	nb.Say("WalkDir reads each directory once and visits lexically, which")
	nb.Say("is why this listing is stable.")

	nb.Step("Checking existence the errors.Is way")
	_, err = os.Stat(join("missing.txt"))
	nb.Sayf("Stat(missing) is fs.ErrNotExist -> %v", errors.Is(err, fs.ErrNotExist))
	nb.Say("Match the sentinel, not the message; the text varies by OS.")

	nb.Takeaways(
		"WriteFile/ReadFile for blobs, bufio for lines and big streams",
		"flush buffered writers and close files on every path",
		"filepath for real paths, io/fs sentinels for error checks",
		"temp dirs plus deferred cleanup keep demos and tests hermetic",
	)
	return nb.Err()
}
