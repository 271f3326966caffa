package channels

import (
	"context"
	"io"
	"time"

	"github.com/katalvlaran/golessons/curriculum"
)

// Generate returns a channel yielding 1..n, closed when exhausted. The
// <-chan return type means callers can only receive; the send side stays
// private to the producing goroutine, which also owns the close.
func Generate(n int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for i := 1; i <= n; i++ {
			out <- i
		}
	}()
	return out
}

// Double is a pipeline stage: it reads until in closes, then closes out.
func Double(in <-chan int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for v := range in {
			out <- v * 2
		}
	}()
	return out
}

// Collect drains ch into a slice, returning when ch closes.
func Collect[T any](ch <-chan T) []T {
	var out []T
	for v := range ch {
		out = append(out, v)
	}
	return out
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   17,
		Slug:     "channels",
		Title:    "Channels and select",
		Part:     curriculum.PartConcurrency,
		Synopsis: "rendezvous, buffering, close semantics, select patterns",
		Topics:   []string{"channel", "buffer", "close", "range", "select", "nil channel"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Channels and select")

	nb.Step("Unbuffered: a rendezvous, not a mailbox")
	ch := make(chan string)
	go func() { ch <- "handover" }()
	nb.Sayf("received %q", <-ch)
	nb.Say("The send blocked until this goroutine arrived to receive. Both")
	nb.Say("sides meet; that meeting is the synchronisation.")

	nb.Step("Buffered: a small queue in front of the rendezvous")
	buf := make(chan int, 2)
	buf <- 1
	buf <- 2
	nb.Sayf("after two sends: len=%d cap=%d (no receiver needed yet)", len(buf), cap(buf))
	nb.Sayf("draining: %d, %d", <-buf, <-buf)
	nb.Say("A third send would have blocked. Buffers absorb bursts; they")
	nb.Say("do not remove the need for a consumer.")

	nb.Step("close, range, comma-ok")
	nums := Generate(4)
	nb.Sayf("range over Generate(4) -> %v", Collect(nums))
	v, ok := <-nums
	nb.Sayf("receive after close    -> %d, ok=%v (zero value, not a panic)", v, ok)
	nb.Say("Only the sender closes. Closing is a broadcast: every pending")
	nb.Say("and future receive completes immediately.")

	nb.Step("Direction types are compile-time contracts")
	nb.Say("Generate returns <-chan int: callers cannot send or close it.")
	nb.Say("Double takes <-chan and returns <-chan, so misuse of either")
	nb.Say("end is a compile error, not a 3am incident.")
	nb.Sayf("Collect(Double(Generate(3))) -> %v", Collect(Double(Generate(3))))

	nb.Step("select: wait on several channels at once")
	fast := make(chan string, 1)
	fast <- "fast lane"
	var slow chan string // nil: its case can never fire
	select {
	case msg := <-fast:
		nb.Sayf("select picked the ready case: %q", msg)
	case msg := <-slow:
		nb.Sayf("unreachable: %q", msg)
	}
	nb.Say("With several cases ready, select chooses uniformly at random;")
	nb.Say("never encode priority as case order.")

	nb.Step("Non-blocking and timeout shapes")
	empty := make(chan int)
	select {
	case v := <-empty:
		nb.Sayf("got %d", v)
	default:
		nb.Say("default: nothing ready, moved on without blocking")
	}
	select {
	case v := <-empty:
		nb.Sayf("got %d", v)
	case <-time.After(time.Millisecond):
		nb.Say("time.After: gave up after 1ms, the poor goroutine's deadline")
	}

	nb.Step("The nil-channel trick")
	nb.Say("Sends and receives on a nil channel block forever, so setting")
	nb.Say("a drained channel variable to nil inside a select loop disables")
	nb.Say("that case while the others keep running.")

	nb.Step("Deadlock anatomy")
	nb.Say("ch := make(chan int); ch <- 1 in main, alone, is the classic:")
	nb.Say("nobody can ever receive, and the runtime panics with")
	nb.Say("\"all goroutines are asleep - deadlock!\" naming every stack.")
	nb.Say("The unbuffered demo above only worked because a second")
	nb.Say("goroutine held the other end.")

	nb.Takeaways(
		"unbuffered channels synchronise; buffers only absorb bursts",
		"the sender closes; receivers learn of it via comma-ok or range",
		"direction types push channel misuse into the compiler",
		"select is randomised among ready cases; nil disables a case",
	)
	return nb.Err()
}
