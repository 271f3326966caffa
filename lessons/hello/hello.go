package hello

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/golessons/curriculum"
)

// Greeting builds the canonical first-program string for name.
// fmt.Sprintf is Printf that returns the string instead of writing it.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Describe renders a value as "type(value)" using the %T and %v verbs.
// %T prints the dynamic type, %v the default human-readable form.
func Describe(v any) string {
	return fmt.Sprintf("%T(%v)", v, v)
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   1,
		Slug:     "hello",
		Title:    "Hello, Go",
		Part:     curriculum.PartFundamentals,
		Synopsis: "program anatomy and the fmt printing family",
		Topics:   []string{"package main", "fmt.Println", "fmt.Printf", "fmt.Sprintf", "format verbs"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Hello, Go")

	nb.Step("The smallest program")
	nb.Say("A runnable Go program is a `package main` with a `func main()`.")
	nb.Say("Everything it prints goes through the fmt package:")
	nb.Say(Greeting("Go"))

	nb.Step("Print vs Println vs Printf")
	nb.Say("Print writes arguments as-is, Println adds spaces and a newline,")
	nb.Say("Printf interpolates a format string. The same values, three ways:")
	nb.Sayf("Print:   %q", fmt.Sprint("x=", 1, " y=", 2))
	nb.Sayf("Println: %q (note the trailing newline it added)", fmt.Sprintln("x =", 1, "y =", 2))
	nb.Sayf("Printf:  %q", fmt.Sprintf("x = %d, y = %d", 1, 2))

	nb.Step("The verbs you will use daily")
	type point struct{ X, Y int }
	p := point{X: 3, Y: 4}
	nb.Show("%v  (default)", fmt.Sprintf("%v", p))
	nb.Show("%+v (field names)", fmt.Sprintf("%+v", p))
	nb.Show("%#v (Go syntax)", fmt.Sprintf("%#v", p))
	nb.Show("%T  (type)", fmt.Sprintf("%T", p))
	nb.Show("%q  (quoted string)", fmt.Sprintf("%q", "hi"))
	nb.Show("%x  (hex)", fmt.Sprintf("%x", 255))
	nb.Show("%06.2f (width.precision)", fmt.Sprintf("%06.2f", 3.14159))

	nb.Step("Sprintf builds strings, Fprintf targets any io.Writer")
	nb.Say("Println(os.Stdout) is just Fprintln(os.Stdout, ...): every print")
	nb.Say("function has an F-variant taking the destination first. This whole")
	nb.Say("lesson writes through an io.Writer, which is why tests can capture it.")
	nb.Sayf("Describe(42)    -> %s", Describe(42))
	nb.Sayf("Describe(\"go\")  -> %s", Describe("go"))
	nb.Sayf("Describe(3.5)   -> %s", Describe(3.5))

	nb.Takeaways(
		"fmt.Println for quick output, fmt.Printf when you need layout",
		"%v handles any value; %+v and %#v reveal structure",
		"Sprintf returns the string; Fprintf writes to any io.Writer",
	)
	return nb.Err()
}
