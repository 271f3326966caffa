package contexts

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/katalvlaran/golessons/curriculum"
)

// requestIDKey is unexported so no other package can collide with our
// value, even if it also stores something under a "request id" notion.
type requestIDKey struct{}

// WithRequestID returns a child context carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the id stored by WithRequestID.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// SlowOperation simulates work taking the given duration, returning early
// with ctx.Err() if the context ends first. The select is the canonical
// shape of every cancellable wait.
func SlowOperation(ctx context.Context, work time.Duration) error {
	t := time.NewTimer(work)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   14,
		Slug:     "contexts",
		Title:    "Context",
		Part:     curriculum.PartFundamentals,
		Synopsis: "cancellation trees, timeouts, values, propagation rules",
		Topics:   []string{"context", "cancel", "timeout", "Done", "WithValue"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Context")

	nb.Step("Roots and derivation")
	nb.Say("context.Background() is the root of a program; TODO() is the")
	nb.Say("placeholder while refactoring. Everything else derives from a")
	nb.Say("parent, forming a tree that cancellation flows down.")

	nb.Step("WithCancel: stopping on demand")
	parent, cancelParent := context.WithCancel(ctx)
	child, cancelChild := context.WithCancel(parent)
	defer cancelChild()
	nb.Sayf("before cancel: parent.Err()=%v child.Err()=%v", parent.Err(), child.Err())
	cancelParent()
	<-child.Done() // already closed: cancellation reached the child
	nb.Sayf("after parent cancel: parent.Err()=%v", parent.Err())
	nb.Sayf("                     child.Err()=%v (flowed downward)", child.Err())
	nb.Say("Cancelling a child never touches its parent; the tree only")
	nb.Say("drains away from the root.")

	nb.Step("WithTimeout: deadlines without bookkeeping")
	quick, cancelQuick := context.WithTimeout(ctx, time.Hour)
	defer cancelQuick()
	nb.Sayf("1ms of work under a 1h deadline  -> err=%v", SlowOperation(quick, time.Millisecond))
	tight, cancelTight := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancelTight()
	nb.Sayf("1h of work under a 20ms deadline -> err=%v", SlowOperation(tight, time.Hour))
	_, hasDeadline := tight.Deadline()
	nb.Sayf("tight.Deadline() ok              -> %v", hasDeadline)
	nb.Say("Always defer cancel(), even after success: it frees the timer")
	nb.Say("and detaches the child from the tree.")

	nb.Step("Cancellation with a recorded cause")
	caused, cancelCause := context.WithCancelCause(ctx)
	cancelCause(errors.New("operator hit the kill switch"))
	nb.Sayf("ctx.Err()          -> %v (uniform signal)", caused.Err())
	nb.Sayf("context.Cause(ctx) -> %v (the story behind it)", context.Cause(caused))

	nb.Step("WithValue: metadata, not parameters")
	reqCtx := WithRequestID(ctx, "req-7f3a")
	id, ok := RequestID(reqCtx)
	nb.Sayf("RequestID(reqCtx)          -> %q, ok=%v", id, ok)
	_, ok = RequestID(ctx)
	nb.Sayf("RequestID(plain ctx)       -> ok=%v", ok)
	nb.Say("Keys are unexported struct types, so lookups cannot collide")
	nb.Say("across packages. Carry trace ids and auth info this way, never")
	nb.Say("required arguments; those belong in the signature.")

	nb.Step("House rules")
	nb.Say("ctx is the first parameter and is never stored in a struct.")
	nb.Say("Loops that run long check ctx.Err() between iterations, and")
	nb.Say("every blocking select carries a <-ctx.Done() case.")

	nb.Takeaways(
		"contexts form a tree; cancel flows from parent to children",
		"defer cancel() immediately after every With* call",
		"select on ctx.Done() is how blocking work becomes stoppable",
		"WithValue is for request metadata behind unexported key types",
	)
	return nb.Err()
}
