package pointers_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/pointers"
)

// ExampleIncrement: the caller's variable changes, because it was shared.
func ExampleIncrement() {
	v := 41
	pointers.Increment(&v)
	fmt.Println(v)
	// Output:
	// 42
}

// ExampleSwapInPlace: two writes through two pointers.
func ExampleSwapInPlace() {
	a, b := 1, 2
	pointers.SwapInPlace(&a, &b)
	fmt.Println(a, b)
	// Output:
	// 2 1
}

// ExampleNewInt: pointers to escaped locals outlive their function.
func ExampleNewInt() {
	p := pointers.NewInt(7)
	q := pointers.NewInt(7)
	fmt.Println(*p, *q, p == q)
	// Output:
	// 7 7 false
}
