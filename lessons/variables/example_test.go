package variables_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/variables"
)

// ExampleZero: the zero value of any type, on demand.
func ExampleZero() {
	fmt.Println(variables.Zero[int]())
	fmt.Printf("%q\n", variables.Zero[string]())
	fmt.Println(variables.Zero[*int]() == nil)
	fmt.Println(variables.Zero[[]byte]() == nil)
	// Output:
	// 0
	// ""
	// true
	// true
}

// ExampleSwap: multiple return values replace the temp-variable dance.
func ExampleSwap() {
	a, b := variables.Swap(1, 2)
	fmt.Println(a, b)

	s, t := variables.Swap("hot", "cold")
	fmt.Println(s, t)
	// Output:
	// 2 1
	// cold hot
}
