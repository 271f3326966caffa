package numbers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrSplitCount is returned by SplitEvenly for a non-positive share count.
var ErrSplitCount = errors.New("numbers: split count must be positive")

// cent is the smallest currency unit SplitEvenly distributes.
var cent = decimal.New(1, -2) // 0.01

// WrapAdd8 adds two int8 values and lets the result wrap. Signed integer
// overflow in Go is defined two's-complement behavior, not an error.
func WrapAdd8(a, b int8) int8 {
	return a + b
}

// SplitEvenly divides total into n shares, each rounded to cents, such that
// the shares sum exactly to total. Earlier shares absorb the leftover cents,
// so shares differ by at most one cent.
func SplitEvenly(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrSplitCount, n)
	}
	shares := decimal.NewFromInt(int64(n))

	// 1) Floor every share to whole cents.
	base := total.Div(shares).Truncate(2)

	// 2) Whatever the floor lost is a small number of cents.
	leftover := total.Sub(base.Mul(shares))
	extra := leftover.Div(cent).IntPart()

	// 3) Hand one extra cent to the first `extra` shares.
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = base
		if int64(i) < extra {
			out[i] = base.Add(cent)
		}
	}
	return out, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   3,
		Slug:     "numbers",
		Title:    "Numbers, overflow, and money",
		Part:     curriculum.PartFundamentals,
		Synopsis: "sized integers, wrap-around, float traps, strconv, decimal money",
		Topics:   []string{"int8..int64", "overflow", "conversions", "float64", "strconv", "shopspring/decimal"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Numbers, overflow, and money")

	nb.Step("Sized integers and their limits")
	nb.Show("math.MaxInt8", math.MaxInt8)
	nb.Show("math.MinInt8", math.MinInt8)
	nb.Show("math.MaxUint16", math.MaxUint16)
	nb.Show("math.MaxInt64", int64(math.MaxInt64))
	nb.Say("Plain `int` is 64-bit on every platform you are likely to meet,")
	nb.Say("but its size is formally platform-dependent. Use it anyway for")
	nb.Say("counts and indexes; reach for sized types at binary boundaries.")

	nb.Step("Overflow wraps, silently and by definition")
	nb.Sayf("WrapAdd8(127, 1)  -> %d (MaxInt8 + 1 wraps to MinInt8)", WrapAdd8(127, 1))
	nb.Sayf("WrapAdd8(-128, -1) -> %d", WrapAdd8(-128, -1))
	nb.Say("No exception, no panic. Guard with math.MaxX checks when it matters.")

	nb.Step("Conversions are explicit, and they truncate")
	big := 300
	nb.Sayf("int8(300)   -> %d (only the low 8 bits survive)", int8(big))
	frac := 2.9
	nb.Sayf("int(2.9)    -> %d (float->int truncates toward zero)", int(frac))
	nb.Sayf("int(-2.9)   -> %d", int(-frac))
	nb.Say("Mixed-type arithmetic does not compile: convert first, on purpose.")

	nb.Step("Floating point is binary, your money is decimal")
	sum := 0.1 + 0.2
	nb.Sayf("0.1 + 0.2         -> %v (float64)", sum)
	nb.Sayf("0.1+0.2 == 0.3    -> %v", sum == 0.3)
	d := decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2))
	nb.Sayf("decimal 0.1 + 0.2 -> %s (exact)", d)

	nb.Step("Splitting a bill without losing a cent")
	total := decimal.RequireFromString("100.00")
	parts, err := SplitEvenly(total, 3)
	if err != nil {
		return err
	}
	for i, p := range parts {
		nb.Sayf("share %d -> %s", i+1, p.StringFixed(2))
	}
	nb.Sayf("shares sum to %s", decimal.Sum(parts[0], parts[1:]...).StringFixed(2))

	nb.Step("strconv: crossing the string border")
	n, _ := strconv.Atoi("42")
	nb.Sayf("strconv.Atoi(\"42\")        -> %d", n)
	nb.Sayf("strconv.Itoa(42)          -> %q", strconv.Itoa(42))
	f, _ := strconv.ParseFloat("2.718", 64)
	nb.Sayf("strconv.ParseFloat        -> %v", f)
	nb.Sayf("strconv.FormatInt(42, 2)  -> %q (base 2)", strconv.FormatInt(42, 2))
	_, convErr := strconv.Atoi("42abc")
	nb.Sayf("strconv.Atoi(\"42abc\")     -> error: %v", convErr)

	nb.Takeaways(
		"fixed-size integers wrap; nothing warns you at runtime",
		"conversions are explicit so precision loss is visible in code",
		"never do money in float64; decimal types keep cents exact",
	)
	return nb.Err()
}
