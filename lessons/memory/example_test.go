package memory_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/memory"
)

// ExampleMakeCounter shows a heap-escaped closure variable surviving its
// enclosing call.
func ExampleMakeCounter() {
	ticks := memory.MakeCounter()
	fmt.Println(ticks(), ticks(), ticks())

	fresh := memory.MakeCounter()
	fmt.Println(fresh())
	// Output:
	// 1 2 3
	// 1
}
