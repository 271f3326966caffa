package structures

import (
	"context"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   37,
		Slug:     "structures",
		Title:    "Data structures",
		Part:     curriculum.PartEngineering,
		Synopsis: "list, stack, queue, BST, trie, LRU, union-find, with costs",
		Topics:   []string{"generics", "linked list", "trees", "tries", "caches", "disjoint sets"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Data structures")

	nb.Step("Linked list: O(1) at both ends")
	l := NewList(1, 2, 3)
	l.PushFront(0)
	nb.Show("after PushFront(0)", l.Items())
	first, err := l.PopFront()
	if err != nil {
		return err
	}
	nb.Show("PopFront()", first)
	nb.Show("remaining", l.Items())
	nb.Say("Pushes and PopFront are O(1); anything by position is O(n).")
	nb.Say("Slices beat lists for almost every Go workload because they")
	nb.Say("are contiguous; reach for a list when splicing dominates.")

	nb.Step("Stack: LIFO on a slice")
	var undo Stack[string]
	undo.Push("type 'hello'")
	undo.Push("bold selection")
	undo.Push("delete line")
	top, _ := undo.Pop()
	nb.Show("Pop()", top)
	peek, _ := undo.Peek()
	nb.Show("Peek()", peek)
	nb.Show("Len()", undo.Len())
	nb.Say("append and a length check are the whole implementation;")
	nb.Say("amortized O(1) because the backing array doubles as it grows.")

	nb.Step("Queue: FIFO with a moving head")
	var jobs Queue[string]
	jobs.Enqueue("job-1")
	jobs.Enqueue("job-2")
	jobs.Enqueue("job-3")
	a, _ := jobs.Dequeue()
	b, _ := jobs.Dequeue()
	nb.Sayf("Dequeue, Dequeue -> %s, %s (insertion order)", a, b)
	nb.Show("Len()", jobs.Len())
	nb.Say("Dequeue advances an index instead of shifting elements, and")
	nb.Say("the slice compacts once the dead prefix dominates.")

	nb.Step("Binary search tree")
	tree := NewBST(5, 3, 8, 1, 4, 7, 9)
	nb.Show("InOrder()", tree.InOrder())
	nb.Show("Has(4)", tree.Has(4))
	nb.Show("Has(6)", tree.Has(6))
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	nb.Sayf("Min, Max -> %d, %d", lo, hi)
	nb.Say("Each comparison discards a subtree: O(log n) when balanced.")
	nb.Say("Sorted input degrades this tree to a linked list, which is")
	nb.Say("why production trees rebalance (red-black, AVL, B-tree).")

	nb.Step("Trie: prefixes as paths")
	dict := NewTrie("go", "golang", "gopher", "grade")
	nb.Show(`WithPrefix("go")`, dict.WithPrefix("go"))
	nb.Show(`Has("gol")`, dict.Has("gol"))
	nb.Show(`HasPrefix("gr")`, dict.HasPrefix("gr"))
	nb.Say("Lookup cost is O(len(key)) regardless of dictionary size;")
	nb.Say("autocomplete and routing tables are the classic users.")

	nb.Step("LRU cache: map + doubly linked list")
	cache := NewLRU[string, int](3)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)
	cache.Get("a") // refresh a so b is now the oldest
	cache.Put("d", 4)
	nb.Show("keys, most recent first", cache.Keys())
	_, hit := cache.Get("b")
	nb.Show(`Get("b") hit`, hit)
	nb.Say("Put refreshed or evicted in O(1): the map finds the entry,")
	nb.Say("the list knows which one is oldest.")

	nb.Step("Union-find: disjoint sets")
	uf := NewUnionFind(6)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 2)
	nb.Show("Components()", uf.Components())
	nb.Show("Connected(0, 3)", uf.Connected(0, 3))
	nb.Show("Connected(4, 5)", uf.Connected(4, 5))
	nb.Say("Path compression plus union by rank makes each operation")
	nb.Say("amortized near-O(1). Kruskal's MST and connectivity queries")
	nb.Say("are built on exactly this.")

	nb.Takeaways(
		"generics let one container serve every element type, checked at compile time",
		"slices with an index beat pointer chasing for stacks and queues",
		"know each structure's cost story before reaching for it",
		"maps plus an ordering structure (list, heap) compose into caches",
	)
	return nb.Err()
}
