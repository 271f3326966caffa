package variables

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Zero returns the zero value of any type T. The body is the entire trick:
// declare a variable and return it before assigning anything.
func Zero[T any]() T {
	var z T
	return z
}

// Swap returns its arguments in reverse order. Multiple return values make
// the temporary-variable dance unnecessary.
func Swap[T any](a, b T) (T, T) {
	return b, a
}

// Typed vs untyped constants. KB is untyped (fits any numeric type);
// Pi64 is locked to float64 at declaration.
const (
	KB   = 1 << 10
	Pi64 float64 = 3.14159
)

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   2,
		Slug:     "variables",
		Title:    "Variables, zero values, constants",
		Part:     curriculum.PartFundamentals,
		Synopsis: "var and :=, zero values, typed and untyped constants, shadowing",
		Topics:   []string{"var", ":=", "zero values", "const", "iota-free constants", "shadowing"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Variables, zero values, constants")

	nb.Step("Two ways to declare")
	var count int = 10 // explicit type, package- or function-scope
	pi := 3.14         // inferred type, function-scope only
	nb.Sayf("var count int = 10   -> %d (type int)", count)
	nb.Sayf("pi := 3.14           -> %v (type %T, inferred)", pi, pi)
	nb.Say("Outside functions only `var` works; := is statement syntax.")

	nb.Step("Zero values: no uninitialized variables, ever")
	nb.Show("var i int", Zero[int]())
	nb.Show("var f float64", Zero[float64]())
	nb.Show("var b bool", Zero[bool]())
	nb.Show("var s string", fmt.Sprintf("%q", Zero[string]()))
	nb.Show("var p *int", Zero[*int]())
	nb.Show("var m map[string]int", Zero[map[string]int]())
	nb.Say("nil maps read fine (length 0); they only panic on write.")

	nb.Step("Constants live in an arbitrary-precision world")
	const big = 1 << 62 // untyped: no overflow until it lands in a variable
	nb.Sayf("KB = 1<<10            -> %d (untyped, adapts to context)", KB)
	nb.Sayf("float64(KB) * 1.5     -> %v (same constant, float context)", float64(KB)*1.5)
	nb.Sayf("const big = 1<<62     -> %d", int64(big))
	nb.Sayf("Pi64 is locked to %T; untyped constants convert at use site.", Pi64)

	nb.Step("Shadowing: := creates a NEW variable in an inner scope")
	x := 1
	if true {
		x := 2 // shadows the outer x until the block ends
		nb.Sayf("inner x = %d", x)
	}
	nb.Sayf("outer x = %d (unchanged: the inner := declared a different x)", x)
	nb.Say("The compiler cannot warn here; go vet's shadow check can.")

	nb.Step("Multiple assignment")
	a, b := "left", "right"
	a, b = Swap(a, b)
	nb.Sayf("after Swap: a=%q b=%q", a, b)

	nb.Takeaways(
		"every variable starts at its type's zero value",
		"untyped constants are arbitrary precision until assigned",
		":= inside a block declares a new variable, it does not assign",
	)
	return nb.Err()
}
