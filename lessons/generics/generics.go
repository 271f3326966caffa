package generics

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNoValues is returned by Max when there is nothing to compare.
var ErrNoValues = errors.New("generics: no values given")

// Number is a union constraint: any integer or float type satisfies it,
// including defined types like time.Duration via the ~ forms underneath.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies f to every element, producing a new slice.
func Map[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reduce folds xs into a single value, starting from init.
func Reduce[T, U any](xs []T, init U, f func(U, T) U) U {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Sum adds any numeric slice. One body serves int, int64, float64, and
// every other Number member.
func Sum[N Number](xs []N) N {
	var total N
	for _, x := range xs {
		total += x
	}
	return total
}

// Max returns the largest argument. The zero-value-plus-error shape is the
// generic version of the usual (result, error) convention.
func Max[T constraints.Ordered](xs ...T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrNoValues
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best, nil
}

// Pair is a generic struct: two independent type parameters.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair with both parameters inferred from the arguments.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Set is a generic defined type over a map. comparable is the constraint
// map keys already require, so it is the one Set needs too.
type Set[T comparable] map[T]struct{}

// SetOf builds a Set from its arguments.
func SetOf[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts item into the set.
func (s Set[T]) Add(item T) { s[item] = struct{}{} }

// Has reports membership.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// Remove deletes item if present.
func (s Set[T]) Remove(item T) { delete(s, item) }

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// Items returns the elements in unspecified order; sort before printing.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	return out
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   12,
		Slug:     "generics",
		Title:    "Generics",
		Part:     curriculum.PartFundamentals,
		Synopsis: "type parameters, constraints, Map/Filter/Reduce, Pair, Set",
		Topics:   []string{"type parameters", "constraints", "inference", "generic containers"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Generics")

	nb.Step("One body, many types")
	nb.Sayf("Sum([]int{1,2,3})          -> %v", Sum([]int{1, 2, 3}))
	nb.Sayf("Sum([]float64{0.5, 0.25})  -> %v", Sum([]float64{0.5, 0.25}))
	nb.Say("Sum is written once against the Number constraint; the compiler")
	nb.Say("checks each instantiation, nothing is asserted at runtime.")

	nb.Step("Inference usually hides the brackets")
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	nb.Sayf("Map(ints, double)          -> %v (T and U inferred)", doubled)
	lengths := Map[string, int]([]string{"go", "java"}, func(s string) int { return len(s) })
	nb.Sayf("Map[string, int](...)      -> %v (spelled out, same thing)", lengths)

	nb.Step("Constraints say what the body may do")
	nb.Say("any:        no operations beyond moving the value around")
	nb.Say("comparable: == and != allowed, required for map keys")
	nb.Say("unions:     Number = constraints.Integer | constraints.Float,")
	nb.Say("            which is what lets Sum use += on T")
	best, _ := Max(3, 1, 4, 1, 5)
	nb.Sayf("Max(3,1,4,1,5)   -> %d (constraints.Ordered allows >)", best)
	word, _ := Max("pear", "apple", "quince")
	nb.Sayf("Max(words...)    -> %q (same body, lexicographic >)", word)
	_, err := Max[int]()
	nb.Sayf("Max[int]()       -> error: %v (explicit arg: nothing to infer from)", err)

	nb.Step("Pipelines compose")
	evensSquared := Map(
		Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 }),
		func(n int) int { return n * n },
	)
	nb.Sayf("squares of evens 1..6      -> %v", evensSquared)
	total := Reduce(evensSquared, 0, func(acc, n int) int { return acc + n })
	nb.Sayf("Reduce(+)                  -> %d", total)

	nb.Step("Generic types: Pair and Set")
	p := PairOf("port", 8080)
	nb.Sayf("PairOf(\"port\", 8080)       -> %v, %T", p, p)
	langs := SetOf("go", "java", "go", "rust")
	nb.Sayf("SetOf(go, java, go, rust)  -> Len %d (duplicates collapse)", langs.Len())
	nb.Sayf("langs.Has(\"java\")          -> %v", langs.Has("java"))
	langs.Remove("java")
	items := langs.Items()
	slices.Sort(items)
	nb.Sayf("after Remove, sorted items -> %v", items)

	nb.Step("The zero-value idiom")
	nb.Say("Inside a generic body there is no literal for \"empty T\";")
	nb.Say("declare var zero T and return it, as Max does on the error path.")

	nb.Takeaways(
		"type parameters move interface{}-style checks to compile time",
		"pick the loosest constraint that permits the body's operations",
		"inference handles most call sites; brackets remain for empty args",
		"best fit: containers and slice algorithms, not everyday APIs",
	)
	return nb.Err()
}
