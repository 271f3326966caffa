package structures_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/structures"
)

func ExampleNewBST() {
	tree := structures.NewBST(5, 3, 8, 1, 4)
	fmt.Println(tree.InOrder())
	fmt.Println(tree.Has(4), tree.Has(6))
	// Output:
	// [1 3 4 5 8]
	// true false
}

func ExampleTrie_WithPrefix() {
	dict := structures.NewTrie("go", "golang", "gopher", "grade")
	fmt.Println(dict.WithPrefix("go"))
	fmt.Println(dict.HasPrefix("gr"), dict.Has("gr"))
	// Output:
	// [go golang gopher]
	// true false
}

func ExampleNewLRU() {
	cache := structures.NewLRU[string, int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Get("a")    // a is now the most recent
	cache.Put("c", 3) // evicts b

	_, ok := cache.Get("b")
	fmt.Println(ok)
	fmt.Println(cache.Keys())
	// Output:
	// false
	// [c a]
}
