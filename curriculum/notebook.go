// Package curriculum: Notebook renders annotated lesson output.
package curriculum

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// headingWidth is the total rune width of a rendered heading rule.
const headingWidth = 64

// Notebook formats lesson output: a heading, numbered steps, indented
// annotation lines, and a closing "Key takeaways" block.
//
// Write errors are sticky: after the first failure every method becomes a
// no-op and Err returns the original error. Lessons therefore print freely
// and check once at the end:
//
//	nb := curriculum.NewNotebook(w)
//	nb.Heading("Pointers")
//	nb.Step("Address-of and dereference")
//	nb.Sayf("x = %d", x)
//	return nb.Err()
type Notebook struct {
	w    io.Writer
	step int
	err  error
}

// NewNotebook returns a Notebook writing to w.
func NewNotebook(w io.Writer) *Notebook {
	return &Notebook{w: w}
}

// printf writes unless a previous write failed.
func (n *Notebook) printf(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format, args...)
}

// Heading renders the lesson title as a horizontal rule:
//
//	── Pointers ────────────────────────────────────────────────────
func (n *Notebook) Heading(title string) {
	pad := headingWidth - utf8.RuneCountInString(title) - 4
	if pad < 1 {
		pad = 1
	}
	n.printf("── %s %s\n", title, strings.Repeat("─", pad))
}

// Step starts the next numbered step of a lesson.
func (n *Notebook) Step(title string) {
	n.step++
	n.printf("\n%2d) %s\n", n.step, title)
}

// Stepf is Step with printf-style formatting.
func (n *Notebook) Stepf(format string, args ...any) {
	n.Step(fmt.Sprintf(format, args...))
}

// Say prints one indented annotation line.
func (n *Notebook) Say(text string) {
	n.printf("   %s\n", text)
}

// Sayf is Say with printf-style formatting.
func (n *Notebook) Sayf(format string, args ...any) {
	n.Say(fmt.Sprintf(format, args...))
}

// Show prints an evaluated expression next to its value, aligned so a
// column of Show calls reads like a table:
//
//	len(s)                     => 5
//	cap(s)                     => 8
func (n *Notebook) Show(label string, value any) {
	n.printf("   %-26s => %v\n", label, value)
}

// Takeaways renders the closing summary block of a lesson.
func (n *Notebook) Takeaways(points ...string) {
	n.printf("\n   Key takeaways:\n")
	for _, p := range points {
		n.printf("   - %s\n", p)
	}
}

// Blank prints an empty line.
func (n *Notebook) Blank() {
	n.printf("\n")
}

// Err returns the first write error encountered, or nil.
func (n *Notebook) Err() error {
	return n.err
}
