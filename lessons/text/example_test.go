package text_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/text"
)

// ExampleReverse: rune-aware reversal keeps multi-byte characters whole.
func ExampleReverse() {
	fmt.Println(text.Reverse("héllo"))
	fmt.Println(text.Reverse("golang"))
	fmt.Println(text.Reverse(""))
	// Output:
	// olléh
	// gnalog
	//
}

// ExampleTitleWords: Fields + Builder in one helper.
func ExampleTitleWords() {
	fmt.Println(text.TitleWords("from mutex to channel"))
	fmt.Println(text.TitleWords("  already   Spaced  "))
	// Output:
	// From Mutex To Channel
	// Already Spaced
}
