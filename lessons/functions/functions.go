package functions

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Sentinel errors for this lesson's helpers.
var (
	// ErrNoInput is returned by MinMax when called with no values.
	ErrNoInput = errors.New("functions: no input values")

	// ErrNegativeInput is returned by Factorial for n < 0.
	ErrNegativeInput = errors.New("functions: negative input")
)

// MinMax returns the smallest and largest of xs in one pass.
// Variadic on the way in, multiple values on the way out.
func MinMax(xs ...int) (min, max int, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrNoInput
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max, nil
}

// Adder returns a function that adds its argument to a running total.
// The total lives in the closure: each Adder call creates fresh state.
func Adder(start int) func(int) int {
	total := start
	return func(x int) int {
		total += x
		return total
	}
}

// Factorial computes n! recursively. Returns ErrNegativeInput for n < 0.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}
	if n <= 1 {
		return 1, nil
	}
	prev, _ := Factorial(n - 1) // n-1 >= 1 here, so the error path is closed
	return n * prev, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   6,
		Slug:     "functions",
		Title:    "Functions, closures, defer",
		Part:     curriculum.PartFundamentals,
		Synopsis: "multiple returns, variadics, closures, defer order, recursion",
		Topics:   []string{"func", "multiple returns", "variadic", "closures", "defer", "recursion"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Functions, closures, defer")

	nb.Step("Multiple returns and the error convention")
	lo, hi, err := MinMax(3, 9, -2, 7)
	nb.Sayf("MinMax(3, 9, -2, 7) -> min=%d max=%d err=%v", lo, hi, err)
	_, _, err = MinMax()
	nb.Sayf("MinMax()            -> err=%v", err)
	nb.Say("The last return value is an error by convention, never by rule.")

	nb.Step("Variadics accept a slice with ...")
	xs := []int{5, 1, 8}
	lo, hi, _ = MinMax(xs...)
	nb.Sayf("MinMax(xs...) with xs=%v -> min=%d max=%d", xs, lo, hi)

	nb.Step("Closures capture variables, not snapshots")
	scoreA := Adder(0)
	scoreB := Adder(100)
	nb.Sayf("scoreA(5) -> %d, scoreA(3) -> %d (state persists)", scoreA(5), scoreA(3))
	nb.Sayf("scoreB(1) -> %d (independent closure, own total)", scoreB(1))

	nb.Step("defer runs LIFO, on every exit path")
	var order []string
	func() {
		defer func() { order = append(order, "first deferred") }()
		defer func() { order = append(order, "second deferred") }()
		order = append(order, "body")
	}()
	nb.Sayf("execution order -> %v", order)
	nb.Say("Deferred calls fire last-in-first-out when the function returns,")
	nb.Say("which is why `defer f.Close()` right after a successful Open is safe.")

	nb.Step("defer arguments are evaluated immediately")
	counter := 0
	func() {
		defer nb.Sayf("deferred saw counter = %d (captured at defer time)", counter)
		counter = 42
	}()
	nb.Sayf("counter is now %d", counter)

	nb.Step("Recursion")
	for _, n := range []int{0, 5, 10} {
		f, _ := Factorial(n)
		nb.Sayf("Factorial(%d) -> %d", n, f)
	}
	_, err = Factorial(-1)
	nb.Sayf("Factorial(-1) -> %v", err)

	nb.Takeaways(
		"(result, error) pairs replace exceptions",
		"each closure owns the variables it captured",
		"defer is LIFO and evaluates its arguments at the defer statement",
	)
	return nb.Err()
}
