package streams

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/golessons/curriculum"
)

// UpperReader uppercases ASCII letters as they flow through. Implementing
// Read is all it takes to join the io ecosystem: it wraps any Reader and
// anything can wrap it.
type UpperReader struct {
	R io.Reader
}

func (u UpperReader) Read(p []byte) (int, error) {
	n, err := u.R.Read(p)
	for i := 0; i < n; i++ {
		if c := p[i]; 'a' <= c && c <= 'z' {
			p[i] = c - ('a' - 'A')
		}
	}
	return n, err
}

// CountWords streams r through a word-splitting Scanner, never holding
// more than one token in memory.
func CountWords(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	n := 0
	for sc.Scan() {
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("streams: scan: %w", err)
	}
	return n, nil
}

// Head returns at most n bytes from r, the LimitReader idiom bottled.
func Head(r io.Reader, n int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return "", fmt.Errorf("streams: head: %w", err)
	}
	return string(data), nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   21,
		Slug:     "streams",
		Title:    "Readers and writers",
		Part:     curriculum.PartStdlib,
		Synopsis: "io composition: limits, tees, pipes, scanners, custom readers",
		Topics:   []string{"io.Reader", "io.Writer", "TeeReader", "MultiWriter", "io.Pipe", "Scanner"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Readers and writers")

	nb.Step("Two tiny interfaces rule everything")
	nb.Say("Read(p []byte) (int, error) pulls bytes out; Write(p []byte)")
	nb.Say("(int, error) pushes bytes in. Files, sockets, buffers, gzip,")
	nb.Say("JSON codecs: every one of them is just one of these.")

	nb.Step("Sources and sinks")
	src := strings.NewReader("hello streams")
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	nb.Sayf("io.ReadAll(strings.Reader) -> %q", string(data))
	var buf bytes.Buffer
	buf.WriteString("buffers are writers ")
	buf.WriteString("and readers")
	nb.Sayf("bytes.Buffer accumulated   -> %q", buf.String())
	n, err := io.Copy(io.Discard, strings.NewReader("counted, discarded"))
	if err != nil {
		return err
	}
	nb.Sayf("io.Copy(Discard, ...)      -> %d bytes moved", n)

	nb.Step("A custom Reader: transform in flight")
	loud, err := io.ReadAll(UpperReader{R: strings.NewReader("quiet words")})
	if err != nil {
		return err
	}
	nb.Sayf("UpperReader -> %q", string(loud))
	nb.Say("No slices copied, no intermediate strings: bytes change as")
	nb.Say("they pass through the Read call.")

	nb.Step("LimitReader caps a stream")
	head, err := Head(strings.NewReader("abcdefghij"), 4)
	if err != nil {
		return err
	}
	nb.Sayf("Head(10 bytes, 4) -> %q", head)

	nb.Step("TeeReader: read once, deliver twice")
	var tapped bytes.Buffer
	tee := io.TeeReader(strings.NewReader("payload"), &tapped)
	consumed, err := io.ReadAll(tee)
	if err != nil {
		return err
	}
	nb.Sayf("consumer saw %q, tap saw %q", string(consumed), tapped.String())
	nb.Say("The classic use: hash or log a body while the real consumer")
	nb.Say("reads it, without buffering the whole thing first.")

	nb.Step("MultiWriter: one write, several sinks")
	var a, b bytes.Buffer
	if _, err := fmt.Fprint(io.MultiWriter(&a, &b), "broadcast"); err != nil {
		return err
	}
	nb.Sayf("sink a -> %q, sink b -> %q", a.String(), b.String())

	nb.Step("io.Pipe joins a writer to a reader")
	pr, pw := io.Pipe()
	go func() {
		defer pw.Close()
		fmt.Fprint(pw, "produced on one side")
	}()
	piped, err := io.ReadAll(pr)
	if err != nil {
		return err
	}
	nb.Sayf("read from the pipe -> %q", string(piped))
	nb.Say("The pipe is unbuffered: the writer blocks until the reader")
	nb.Say("drains it, so memory stays flat no matter the volume.")

	nb.Step("Scanner split functions")
	words, err := CountWords(strings.NewReader("to be or not to be"))
	if err != nil {
		return err
	}
	nb.Sayf("CountWords(\"to be or not to be\") -> %d", words)

	nb.Takeaways(
		"code against io.Reader/io.Writer, not concrete types",
		"decorators (Limit, Tee, Multi) compose like pipeline fittings",
		"io.Pipe connects push-style producers to pull-style consumers",
		"Scanner split functions tokenise streams without slurping them",
	)
	return nb.Err()
}
