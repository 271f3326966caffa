package curriculum_test

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/golessons/curriculum"
)

// ExampleNew builds a two-lesson course and looks a lesson up both ways.
func ExampleNew() {
	hello := curriculum.Lesson{
		Number:   1,
		Slug:     "hello",
		Title:    "Hello, Go",
		Part:     curriculum.PartFundamentals,
		Synopsis: "program anatomy and fmt printing",
		Run: func(_ context.Context, w io.Writer) error {
			fmt.Fprintln(w, "Hello, Go!")
			return nil
		},
	}
	pointers := curriculum.Lesson{
		Number:   7,
		Slug:     "pointers",
		Title:    "Pointers",
		Part:     curriculum.PartFundamentals,
		Synopsis: "addresses, dereference, pointer vs value",
		Run: func(_ context.Context, w io.Writer) error {
			fmt.Fprintln(w, "x := 42; p := &x")
			return nil
		},
	}

	reg, err := curriculum.New(pointers, hello) // registration order is irrelevant
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, l := range reg.All() {
		fmt.Println(l.Ref(), "-", l.Synopsis)
	}

	byNumber, _ := reg.Find("7")
	bySlug, _ := reg.Find("pointers")
	fmt.Println(byNumber.Slug == bySlug.Slug)
	// Output:
	// 01 hello - program anatomy and fmt printing
	// 07 pointers - addresses, dereference, pointer vs value
	// true
}

// ExampleRegistry_Run executes one lesson by slug, writing to stdout.
func ExampleRegistry_Run() {
	reg := curriculum.MustNew(curriculum.Lesson{
		Number:   1,
		Slug:     "hello",
		Title:    "Hello, Go",
		Part:     curriculum.PartFundamentals,
		Synopsis: "program anatomy",
		Run: func(_ context.Context, w io.Writer) error {
			fmt.Fprintln(w, "Hello, Go!")
			return nil
		},
	})

	if err := reg.Run(context.Background(), os.Stdout, "hello"); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Hello, Go!
}

// ExampleNotebook shows the rendering primitives lessons are built from.
func ExampleNotebook() {
	nb := curriculum.NewNotebook(os.Stdout)
	nb.Step("Declare and assign")
	nb.Say("x := 42")
	nb.Step("Mutate through a pointer")
	nb.Say("*p = 43")
	nb.Takeaways("a pointer is a value holding an address")
	if err := nb.Err(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1) Declare and assign
	//    x := 42
	//
	//  2) Mutate through a pointer
	//    *p = 43
	//
	//    Key takeaways:
	//    - a pointer is a value holding an address
}
