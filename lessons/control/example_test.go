package control_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/golessons/lessons/control"
)

// ExampleFizzBuzz: the whole interview question in one switch.
func ExampleFizzBuzz() {
	var out []string
	for i := 1; i <= 15; i++ {
		out = append(out, control.FizzBuzz(i))
	}
	fmt.Println(strings.Join(out, " "))
	// Output:
	// 1 2 Fizz 4 Buzz Fizz 7 8 Fizz Buzz 11 Fizz 13 14 FizzBuzz
}

// ExampleGrade: a condition-less switch as an if/else ladder.
func ExampleGrade() {
	for _, score := range []int{100, 90, 89, 60, 59} {
		fmt.Printf("%d -> %s\n", score, control.Grade(score))
	}
	// Output:
	// 100 -> A
	// 90 -> A
	// 89 -> B
	// 60 -> D
	// 59 -> F
}

// ExampleFirstDivisor: for as a while loop.
func ExampleFirstDivisor() {
	fmt.Println(control.FirstDivisor(91))
	fmt.Println(control.FirstDivisor(97))
	fmt.Println(control.FirstDivisor(100))
	// Output:
	// 7
	// 97
	// 2
}
