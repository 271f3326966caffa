package collections

import (
	"context"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/golessons/curriculum"
)

// Unique returns xs without duplicates, keeping first occurrences in order.
func Unique(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// WordCount lowercases text and counts whitespace-separated words.
func WordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		counts[w]++
	}
	return counts
}

// SortedKeys returns the keys of m in ascending order. Map iteration order
// is deliberately random; sorting is how results become reproducible.
func SortedKeys(m map[string]int) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// TopWords returns the n most frequent words, most frequent first and ties
// broken alphabetically, so the answer is stable run to run.
func TopWords(counts map[string]int, n int) []string {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for w, c := range counts {
		entries = append(entries, entry{word: w, count: c})
	}
	slices.SortFunc(entries, func(a, b entry) bool {
		if a.count != b.count {
			return a.count > b.count
		}
		return a.word < b.word
	})
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = entries[i].word
	}
	return out
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   11,
		Slug:     "collections",
		Title:    "Arrays, slices, maps",
		Part:     curriculum.PartFundamentals,
		Synopsis: "slice headers, aliasing, append growth, map idioms, x/exp helpers",
		Topics:   []string{"array", "slice", "cap", "append", "map", "x/exp/slices"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Arrays, slices, maps")

	nb.Step("Arrays are values")
	a := [3]int{1, 2, 3}
	b := a // full copy
	b[0] = 99
	nb.Sayf("a := [3]int{1,2,3}; b := a; b[0] = 99")
	nb.Sayf("a -> %v, b -> %v (independent copies)", a, b)
	nb.Sayf("a == [3]int{1,2,3} -> %v (same length and elements compare)", a == [3]int{1, 2, 3})

	nb.Step("Slices are views: {pointer, len, cap}")
	base := []int{10, 20, 30, 40, 50}
	view := base[1:4]
	nb.Sayf("base -> %v", base)
	nb.Sayf("view := base[1:4] -> %v, len=%d cap=%d", view, len(view), cap(view))
	view[0] = 99
	nb.Sayf("view[0] = 99 -> base is now %v (shared backing array)", base)

	nb.Step("append grows by reallocating")
	var s []int
	prevCap := -1
	for i := 1; i <= 9; i++ {
		s = append(s, i)
		if cap(s) != prevCap {
			nb.Sayf("len=%d cap=%d (reallocated)", len(s), cap(s))
			prevCap = cap(s)
		}
	}
	nb.Say("Each reallocation copies to a bigger array, so pointers taken")
	nb.Say("before an append may point at the abandoned one afterwards.")

	nb.Step("copy, and the three-index slice")
	dst := make([]int, len(base))
	n := copy(dst, base)
	dst[0] = -1
	nb.Sayf("copy(dst, base) copied %d; dst[0]=-1 leaves base %v", n, base)
	capped := base[1:3:3]
	capped = append(capped, 77) // cap is full, so this reallocates
	nb.Sayf("capped := base[1:3:3]; append(capped, 77) -> %v, base still %v", capped, base)
	nb.Say("The third index caps capacity, forcing append off the shared array.")

	nb.Step("Maps: lookup, comma-ok, delete")
	age := map[string]int{"ada": 36, "alan": 41}
	nb.Sayf(`age["ada"]  -> %d`, age["ada"])
	v, ok := age["grace"]
	nb.Sayf(`age["grace"] -> %d, ok=%v (missing keys yield the zero value)`, v, ok)
	delete(age, "alan")
	nb.Sayf("after delete: len=%d, keys=%v", len(age), SortedKeys(age))
	nb.Say("Iteration order is randomised on purpose. Sort the keys when")
	nb.Say("output must be reproducible, as SortedKeys does.")

	nb.Step("x/exp/slices: the missing verbs")
	words := []string{"banana", "fig", "kiwi", "fig"}
	nb.Sayf("words                       -> %v", words)
	nb.Sayf("slices.Contains(words, fig) -> %v", slices.Contains(words, "fig"))
	nb.Sayf("slices.Index(words, kiwi)   -> %d", slices.Index(words, "kiwi"))
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	nb.Sayf("Sort(Clone(words))          -> %v (original untouched: %v)", sorted, words)
	nb.Sayf("slices.Compact(sorted)      -> %v (removes adjacent dups)", slices.Compact(sorted))
	byLen := []string{"banana", "fig", "kiwi"}
	slices.SortFunc(byLen, func(a, b string) bool { return len(a) < len(b) })
	nb.Sayf("SortFunc by length          -> %v", byLen)

	nb.Step("Putting it together: word frequencies")
	text := "the quick brown fox jumps over the lazy dog the brown fox"
	counts := WordCount(text)
	nb.Sayf("distinct words  -> %d", len(counts))
	nb.Sayf("TopWords(3)     -> %v", TopWords(counts, 3))
	nb.Sayf("Unique(fields)  -> %v", Unique(strings.Fields(text)))

	nb.Takeaways(
		"arrays copy, slices alias; know which one you are holding",
		"append may reallocate, so always keep its return value",
		"comma-ok distinguishes a stored zero from a missing key",
		"map iteration is random: sort keys before printing or asserting",
	)
	return nb.Err()
}
