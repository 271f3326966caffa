package enums_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/enums"
)

// ExampleWeekday_String: the name for known values, the raw int for junk.
func ExampleWeekday_String() {
	fmt.Println(enums.Friday)
	fmt.Println(enums.Weekday(42))
	// Output:
	// Friday
	// Weekday(42)
}

func ExampleParseWeekday() {
	d, err := enums.ParseWeekday("monday")
	fmt.Println(d, err)
	fmt.Println(d.IsWeekend())
	// Output:
	// Monday <nil>
	// false
}

// ExamplePermission: flags compose with With and read back with Has.
func ExamplePermission() {
	p := enums.PermRead.With(enums.PermExec)
	fmt.Println(p)
	fmt.Println(p.Has(enums.PermWrite))
	fmt.Println(p.Without(enums.PermExec))
	// Output:
	// read|exec
	// false
	// read
}
