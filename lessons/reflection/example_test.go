package reflection_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/reflection"
)

// ExampleSetField: mutation goes through the pointer, as the third law
// demands.
func ExampleSetField() {
	p := reflection.Person{Nickname: "gopher", Score: 10}

	_ = reflection.SetField(&p, "Score", 99)
	fmt.Println(p.Score)

	err := reflection.SetField(p, "Score", 1) // no pointer, no dice
	fmt.Println(err)
	// Output:
	// 99
	// reflection: target must be a pointer to struct
}

func ExampleCallByName() {
	p := reflection.Person{Nickname: "gopher", Score: 42}
	out, _ := reflection.CallByName(p, "Cheer")
	fmt.Println(out[0])
	// Output:
	// gopher scores 42!
}

func ExampleFieldLabels() {
	labels, _ := reflection.FieldLabels(reflection.Person{})
	fmt.Println(labels["Nickname"], labels["Score"])
	// Output:
	// nick points
}
