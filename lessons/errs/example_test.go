package errs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/golessons/lessons/errs"
)

// ExampleLookup: the sentinel stays matchable through the wrapping.
func ExampleLookup() {
	db := map[string]string{"host": "localhost"}

	_, err := errs.Lookup(db, "port")
	fmt.Println(err)
	fmt.Println(errors.Is(err, errs.ErrNotFound))
	// Output:
	// errs: lookup "port": not found
	// true
}

// ExampleParseKV: errors.As digs the typed error out of a wrapped chain.
func ExampleParseKV() {
	_, _, err := errs.ParseKV("not a pair", 3)
	err = fmt.Errorf("loading: %w", err)

	var pe *errs.ParseError
	if errors.As(err, &pe) {
		fmt.Println("failed at line", pe.Line)
	}
	// Output:
	// failed at line 3
}

func ExampleCheckFields() {
	err := errs.CheckFields(map[string]string{"name": "ada"}, "name", "email")
	fmt.Println(err)
	// Output:
	// errs: field "email" missing
}

func ExampleRecovered() {
	err := errs.Recovered(func() { panic("boom") })
	fmt.Println(err)
	// Output:
	// errs: recovered: boom
}
