package control

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/golessons/curriculum"
)

// FizzBuzz returns the FizzBuzz word for n: "Fizz" for multiples of 3,
// "Buzz" for 5, "FizzBuzz" for both, otherwise the number itself.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Grade maps a 0-100 score to a letter using a condition-less switch.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// FirstDivisor returns the smallest divisor of n greater than 1, using the
// while-shaped form of for. n must be >= 2.
func FirstDivisor(n int) int {
	d := 2
	for d*d <= n {
		if n%d == 0 {
			return d
		}
		d++
	}
	return n // prime
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   5,
		Slug:     "control",
		Title:    "Control flow",
		Part:     curriculum.PartFundamentals,
		Synopsis: "if with init, switch without break, every shape of for",
		Topics:   []string{"if", "switch", "for", "range", "break", "continue", "labels"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Control flow")

	nb.Step("if with an init statement")
	nb.Say("The idiomatic error check declares and tests in one line;")
	nb.Say("`v` and `err` exist only inside the if/else chain:")
	if v, err := strconv.Atoi("123"); err == nil {
		nb.Sayf("if v, err := strconv.Atoi(\"123\"); err == nil { ... } -> v = %d", v)
	}

	nb.Step("switch: no fallthrough unless you ask")
	nb.Say("Cases break automatically. Multiple values share a case, and a")
	nb.Say("condition-less switch is a cleaner if/else ladder:")
	for _, score := range []int{95, 84, 71, 12} {
		nb.Sayf("Grade(%d) -> %s", score, Grade(score))
	}

	nb.Step("for, shape 1: the counter loop")
	var words []string
	for i := 1; i <= 5; i++ {
		words = append(words, FizzBuzz(i))
	}
	nb.Sayf("FizzBuzz 1..5 -> %s", strings.Join(words, " "))

	nb.Step("for, shape 2: the while loop")
	nb.Sayf("FirstDivisor(91) -> %d (loops while d*d <= n)", FirstDivisor(91))
	nb.Sayf("FirstDivisor(97) -> %d (prime: the loop runs out)", FirstDivisor(97))

	nb.Step("for, shape 3: infinite with break")
	n, steps := 27, 0
	for {
		if n == 1 {
			break
		}
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		steps++
	}
	nb.Sayf("Collatz(27) reaches 1 in %d steps", steps)

	nb.Step("for, shape 4: range")
	total := 0
	for i, v := range []int{10, 20, 30} {
		total += v
		nb.Sayf("index %d value %d", i, v)
	}
	nb.Sayf("sum -> %d (drop the index with `for _, v := range`)", total)

	nb.Step("labels reach past the inner loop")
	var found string
search:
	for _, row := range [][]string{{"a", "b"}, {"c", "target"}, {"e"}} {
		for _, cell := range row {
			if cell == "target" {
				found = cell
				break search // break alone would only leave the inner loop
			}
		}
	}
	nb.Sayf("labeled break found %q", found)

	nb.Takeaways(
		"for is the only loop; its four shapes cover everything",
		"switch cases break by default; use condition-less switch over long else-if",
		"if's init statement keeps error variables scoped to the check",
	)
	return nb.Err()
}
