package channels_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/channels"
)

// ExampleGenerate: range stops by itself because the producer closes.
func ExampleGenerate() {
	for v := range channels.Generate(5) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 1 2 3 4 5
}

// ExampleDouble: stages connected by channels form a pipeline.
func ExampleDouble() {
	fmt.Println(channels.Collect(channels.Double(channels.Generate(3))))
	// Output:
	// [2 4 6]
}

// ExampleCollect: a closed empty channel drains to nothing.
func ExampleCollect() {
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)
	fmt.Println(channels.Collect(ch))
	// Output:
	// [a b]
}
