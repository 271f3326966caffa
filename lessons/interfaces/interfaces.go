package interfaces

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNoShapes is returned by Largest when called with nothing to compare.
var ErrNoShapes = errors.New("interfaces: no shapes given")

// Shape is the lesson's contract: anything that can report its area and
// perimeter. Note there is no list of implementers anywhere; Circle and
// Rect qualify purely by having the methods.
type Shape interface {
	Area() float64
	Perimeter() float64
}

// Circle satisfies Shape and fmt.Stringer.
type Circle struct {
	Radius float64
}

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

// String makes fmt render a Circle as circle(r=...) wherever %v or %s is used.
func (c Circle) String() string { return fmt.Sprintf("circle(r=%g)", c.Radius) }

// Rect satisfies Shape and fmt.Stringer.
type Rect struct {
	W, H float64
}

func (r Rect) Area() float64      { return r.W * r.H }
func (r Rect) Perimeter() float64 { return 2 * (r.W + r.H) }
func (r Rect) String() string     { return fmt.Sprintf("rect(%gx%g)", r.W, r.H) }

// TotalArea sums areas without knowing a single concrete type.
func TotalArea(shapes ...Shape) float64 {
	var sum float64
	for _, s := range shapes {
		sum += s.Area()
	}
	return sum
}

// Largest returns the shape with the greatest area.
func Largest(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	best := shapes[0]
	for _, s := range shapes[1:] {
		if s.Area() > best.Area() {
			best = s
		}
	}
	return best, nil
}

// Describe classifies an arbitrary value with a type switch. The cases run
// in order, so the Shape case catches Circle and Rect before default would.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Shape:
		return fmt.Sprintf("shape with area %.2f", x.Area())
	case string:
		return fmt.Sprintf("string of length %d", len(x))
	case int:
		return fmt.Sprintf("int %d", x)
	case error:
		return "error: " + x.Error()
	default:
		return fmt.Sprintf("unhandled %T", v)
	}
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   9,
		Slug:     "interfaces",
		Title:    "Interfaces",
		Part:     curriculum.PartFundamentals,
		Synopsis: "implicit satisfaction, assertions, type switches, Stringer",
		Topics:   []string{"interface", "type assertion", "type switch", "Stringer", "typed nil"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Interfaces")

	nb.Step("Satisfaction is implicit")
	var s Shape = Circle{Radius: 1.5}
	nb.Say("Circle never mentions Shape, yet assigning it compiles because")
	nb.Say("the methods line up. The compiler checks this, not a registry.")
	nb.Sayf("s.Area()      -> %.2f", s.Area())
	nb.Sayf("s.Perimeter() -> %.2f", s.Perimeter())

	nb.Step("An interface value is a (type, value) pair")
	nb.Sayf("s = Circle{1.5}: %%T -> %T", s)
	s = Rect{W: 3, H: 4}
	nb.Sayf("s = Rect{3,4}:   %%T -> %T", s)
	nb.Say("Same variable, different dynamic type. Method calls dispatch on")
	nb.Say("the dynamic type at runtime.")

	nb.Step("Code against the contract, not the concrete types")
	shapes := []Shape{Circle{Radius: 1}, Rect{W: 3, H: 4}, Circle{Radius: 2}}
	nb.Sayf("TotalArea(circle r=1, rect 3x4, circle r=2) -> %.2f", TotalArea(shapes...))
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Area() < shapes[j].Area() })
	nb.Sayf("sorted by area -> %v", shapes)
	big, _ := Largest(shapes...)
	nb.Sayf("Largest(...)   -> %v", big)

	nb.Step("Type assertion: comma-ok or panic")
	var v any = "gopher"
	str, ok := v.(string)
	nb.Sayf("v.(string)  -> %q, ok=%v", str, ok)
	n, ok := v.(int)
	nb.Sayf("v.(int)     -> %d, ok=%v (zero value, no panic with comma-ok)", n, ok)
	nb.Say("A bare v.(int) would panic here. Prefer the two-result form.")

	nb.Step("Type switch: one branch per dynamic type")
	for _, v := range []any{Circle{Radius: 1}, "hi", 42, errors.New("boom"), nil} {
		nb.Sayf("Describe(%v) -> %s", v, Describe(v))
	}

	nb.Step("fmt.Stringer: the interface fmt checks for you")
	nb.Sayf("fmt saw String() on Circle, so %%v prints %v, not a field dump", Circle{Radius: 2})
	nb.Say("Implementing Stringer is how a type controls its own rendering.")

	nb.Step("Trap: an interface holding a nil pointer is not nil")
	var pc *Circle
	var maybe Shape = pc
	nb.Sayf("var pc *Circle; var maybe Shape = pc")
	nb.Sayf("pc == nil    -> %v", pc == nil)
	nb.Sayf("maybe == nil -> %v (the pair is (*Circle, nil), not (nil, nil))", maybe == nil)
	nb.Say("Return a plain nil for empty interface results, never a nil")
	nb.Say("concrete pointer, or callers' nil checks silently pass.")

	nb.Takeaways(
		"the consumer declares the interface; producers satisfy it implicitly",
		"keep interfaces small: one or two methods is the sweet spot",
		"comma-ok assertions and type switches recover the concrete type",
		"an interface is nil only when both its type and value are nil",
	)
	return nb.Err()
}
