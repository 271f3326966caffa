package unittest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrOutOfRange reports a number outside the classical Roman range.
var ErrOutOfRange = errors.New("unittest: out of range")

var romanSteps = []struct {
	value int
	glyph string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// RomanNumeral renders n in Roman numerals. Classical notation covers
// 1 through 3999.
func RomanNumeral(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	var b strings.Builder
	for _, s := range romanSteps {
		for n >= s.value {
			b.WriteString(s.glyph)
			n -= s.value
		}
	}
	return b.String(), nil
}

// Normalize lowercases s and collapses all whitespace runs to single
// spaces. It is idempotent, which the fuzz target leans on.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Fibonacci returns the nth Fibonacci number iteratively; it exists to
// give the benchmark something honest to measure.
func Fibonacci(n int) int {
	if n <= 0 {
		return 0
	}
	a, b := 0, 1
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   33,
		Slug:     "unittest",
		Title:    "Testing",
		Part:     curriculum.PartEngineering,
		Synopsis: "table tests, subtests, helpers, benchmarks, examples, fuzzing",
		Topics:   []string{"go test", "table tests", "t.Helper", "testify", "benchmarks", "fuzzing"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Testing")

	nb.Step("Tests are plain functions in _test.go files")
	nb.Say("func TestXxx(t *testing.T) next to the code it tests, run with")
	nb.Say("go test ./... - no framework, no runner config, no annotations.")
	nb.Say("t.Error keeps going, t.Fatal stops the test; both mark failure.")

	nb.Step("Table-driven tests: cases as data")
	table := []struct {
		in   int
		want string
	}{
		{1, "I"}, {4, "IV"}, {9, "IX"}, {14, "XIV"},
		{90, "XC"}, {1987, "MCMLXXXVII"}, {3999, "MMMCMXCIX"},
	}
	for _, tc := range table {
		got, err := RomanNumeral(tc.in)
		if err != nil {
			return err
		}
		marker := " "
		if got == tc.want {
			marker = "="
		}
		nb.Sayf("%4d -> %-10s %s expected %s", tc.in, got, marker, tc.want)
	}
	nb.Say("Adding a case is adding a row. The loop body is the only")
	nb.Say("assertion logic, so it cannot drift between cases.")

	nb.Step("Subtests name and isolate each row")
	nb.Say("t.Run(tc.name, func(t *testing.T){...}) gives each case its")
	nb.Say("own pass/fail line and makes it addressable:")
	nb.Say("  go test -run 'TestRomanNumeral/nineteen'")
	nb.Say("Error rows become ordinary cases too, asserted with ErrorIs:")
	_, err := RomanNumeral(4000)
	nb.Sayf("RomanNumeral(4000) -> %v", err)

	nb.Step("Helpers blame the right line")
	nb.Say("A shared assertion func calls t.Helper() first; failures then")
	nb.Say("point at the caller's line, not at the helper's own t.Errorf.")

	nb.Step("testify: assert and require")
	nb.Say("require.NoError stops the test when continuing is pointless;")
	nb.Say("assert.Equal records the diff and keeps checking. The failure")
	nb.Say("output prints expected vs actual without hand-rolled messages.")

	nb.Step("Benchmarks measure, tests judge")
	nb.Sayf("Fibonacci(20) -> %d, Fibonacci(40) -> %d", Fibonacci(20), Fibonacci(40))
	nb.Say("func BenchmarkXxx(b *testing.B) loops b.N times; the harness")
	nb.Say("picks N until the timing stabilises. Run with:")
	nb.Say("  go test -bench=. -benchmem")
	nb.Say("b.ReportAllocs makes allocation counts part of the report.")

	nb.Step("Example tests are documentation that cannot rot")
	nb.Say("func ExampleXxx() with an // Output: comment both renders in")
	nb.Say("godoc and runs under go test, comparing printed output.")

	nb.Step("Fuzzing hunts for inputs you did not imagine")
	nb.Sayf("Normalize(\"  Mixed   CASE text \") -> %q", Normalize("  Mixed   CASE text "))
	nb.Say("func FuzzXxx(f *testing.F) seeds a corpus with f.Add and")
	nb.Say("states a property that must hold for any input; here,")
	nb.Say("normalising twice must equal normalising once.")
	nb.Say("  go test -fuzz=FuzzNormalize -fuzztime=10s")

	nb.Step("The everyday flags")
	nb.Say("-run NAME     run matching tests    -v        print each test")
	nb.Say("-race         detect data races     -cover    coverage summary")
	nb.Say("-count=1      defeat the cache      -short    skip slow tests")

	nb.Takeaways(
		"tables + subtests scale to hundreds of cases without ceremony",
		"t.Helper keeps failure locations useful",
		"benchmarks and fuzz targets live in the same _test.go world",
		"run tests with -race; it has no false positives",
	)
	return nb.Err()
}
