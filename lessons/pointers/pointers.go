package pointers

import (
	"context"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Increment adds one to the int p points at.
// The caller sees the change because both sides share the same address.
func Increment(p *int) {
	*p++
}

// SwapInPlace exchanges the values behind two pointers.
func SwapInPlace(a, b *int) {
	*a, *b = *b, *a
}

// NewInt returns a pointer to a fresh int holding v. The local escapes to
// the heap, so the pointer stays valid after the function returns.
func NewInt(v int) *int {
	return &v
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   7,
		Slug:     "pointers",
		Title:    "Pointers",
		Part:     curriculum.PartFundamentals,
		Synopsis: "addresses, dereference, nil, value vs pointer semantics",
		Topics:   []string{"&", "*", "new", "nil", "escape to heap"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Pointers")

	nb.Step("Address-of and dereference")
	x := 42
	p := &x
	nb.Sayf("x := 42; p := &x")
	nb.Sayf("*p       -> %d (read through the pointer)", *p)
	*p = 43
	nb.Sayf("*p = 43  -> x is now %d (write through the pointer)", x)

	nb.Step("Arguments are copies; pointers share")
	val := 10
	bump := func(v int) { v++ } // mutates its private copy
	bump(val)
	nb.Sayf("after bump(val):       val = %d (the copy changed, not val)", val)
	Increment(&val)
	nb.Sayf("after Increment(&val): val = %d", val)

	nb.Step("Swapping through pointers")
	a, b := 1, 2
	SwapInPlace(&a, &b)
	nb.Sayf("SwapInPlace(&a, &b) -> a=%d b=%d", a, b)

	nb.Step("nil is the zero pointer, and it is checkable")
	var q *int
	nb.Sayf("var q *int -> q == nil is %v", q == nil)
	nb.Say("Dereferencing nil panics, so guard: if q != nil { use *q }.")
	if q != nil {
		nb.Sayf("unreachable: %d", *q)
	}

	nb.Step("new and escaping locals")
	n := new(int) // *int pointing at a zeroed int
	nb.Sayf("new(int)   -> pointer to %d", *n)
	c := NewInt(7)
	nb.Sayf("NewInt(7)  -> pointer to %d (the local escaped to the heap)", *c)
	nb.Say("Returning &local is idiomatic Go; the compiler decides where it lives.")

	nb.Step("What Go pointers cannot do")
	nb.Say("No p++ arithmetic, no casting between unrelated pointer types,")
	nb.Say("no pointer into the middle of a variable. unsafe.Pointer exists")
	nb.Say("for the rare FFI boundary and is quarantined by its name.")

	nb.Takeaways(
		"&v takes an address, *p reads or writes through it",
		"all calls copy their arguments; share memory by passing pointers",
		"nil pointers are normal values to check, not landmines to fear",
	)
	return nb.Err()
}
