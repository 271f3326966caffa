package futures

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNoFutures is returned by First when given nothing to race.
var ErrNoFutures = errors.New("futures: no futures given")

// Future holds the eventual result of one function call. The done channel
// closes exactly once, after val and err are written, so every reader
// that passes Await observes a fully published result.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn in its own goroutine and returns a Future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Resolve returns a future already completed with v.
func Resolve[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: v}
	close(f.done)
	return f
}

// Reject returns a future already failed with err.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Await blocks until the result is ready or ctx ends, whichever first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Ready reports whether the result is already available.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Then returns a future for fn applied to f's result. Errors skip fn and
// flow straight through, like the error short-circuit in a call chain.
// It is a function, not a method: methods cannot add type parameters.
func Then[T, U any](ctx context.Context, f *Future[T], fn func(T) (U, error)) *Future[U] {
	return Go(func() (U, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// All awaits every future, returning results in argument order. The first
// error aborts the gather.
func All[T any](ctx context.Context, fs ...*Future[T]) ([]T, error) {
	out := make([]T, len(fs))
	for i, f := range fs {
		v, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// First returns the result of whichever future completes first, success
// or failure. Give it a cancellable ctx so straggler waits can be ended.
func First[T any](ctx context.Context, fs ...*Future[T]) (T, error) {
	if len(fs) == 0 {
		var zero T
		return zero, ErrNoFutures
	}
	type outcome struct {
		val T
		err error
	}
	ch := make(chan outcome, len(fs)) // buffered: losers never block
	for _, f := range fs {
		f := f
		go func() {
			v, err := f.Await(ctx)
			ch <- outcome{val: v, err: err}
		}()
	}
	first := <-ch
	return first.val, first.err
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   19,
		Slug:     "futures",
		Title:    "Futures from channels",
		Part:     curriculum.PartConcurrency,
		Synopsis: "promise composition: chain, gather, race, timeout",
		Topics:   []string{"future", "promise", "Then", "All", "First", "timeout"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Futures from channels")

	nb.Step("Start now, collect later")
	answer := Go(func() (int, error) { return 6 * 7, nil })
	v, err := answer.Await(ctx)
	nb.Sayf("Go(6*7).Await() -> %d, err=%v", v, err)
	nb.Sayf("answer.Ready()  -> %v (completed futures stay readable)", answer.Ready())
	nb.Say("Await after completion returns instantly; the closed done")
	nb.Say("channel is a latch, not a one-shot message.")

	nb.Step("Chaining with Then")
	text := Go(func() (string, error) { return "41", nil })
	incremented := Then(ctx, text, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		return n + 1, err
	})
	v, _ = incremented.Await(ctx)
	nb.Sayf("fetch \"41\" |> parse+1 -> %d", v)

	nb.Step("Errors skip the rest of the chain")
	failed := Reject[string](errors.New("upstream down"))
	chained := Then(ctx, failed, func(s string) (int, error) {
		return len(s), nil // never runs
	})
	_, err = chained.Await(ctx)
	nb.Sayf("Then after Reject -> err=%v (fn was skipped)", err)

	nb.Step("All: gather in order")
	results, err := All(ctx,
		Go(func() (int, error) { return 10, nil }),
		Go(func() (int, error) { return 20, nil }),
		Go(func() (int, error) { return 30, nil }),
	)
	nb.Sayf("All(three fetches) -> %v, err=%v", results, err)
	nb.Say("The futures run concurrently; All only sequences the waiting,")
	nb.Say("so the total cost is the slowest branch, not the sum.")

	nb.Step("First: whoever answers, wins")
	gate := make(chan struct{})
	defer close(gate)
	slow := Go(func() (string, error) { <-gate; return "database", nil })
	fast := Resolve("cache")
	winner, _ := First(ctx, slow, fast)
	nb.Sayf("First(slow db, warm cache) -> %q", winner)

	nb.Step("Timeouts are just Await with a deadline")
	stuck := Go(func() (string, error) { <-gate; return "never", nil })
	shortCtx, cancel := context.WithTimeout(ctx, 15*time.Millisecond)
	defer cancel()
	_, err = stuck.Await(shortCtx)
	nb.Sayf("Await(15ms) on a stuck future -> %v", err)
	nb.Say("The future itself keeps running; a timeout abandons the wait,")
	nb.Say("not the work. Cancel the work through its own context.")

	nb.Takeaways(
		"a future is a goroutine, a result, and a closed-once channel",
		"compose with Then/All/First instead of nesting callbacks",
		"deadlines live in the Await, cancellation in the work's ctx",
		"pre-completed Resolve/Reject make future-based code testable",
	)
	return nb.Err()
}
