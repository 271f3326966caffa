package enums

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrUnknownWeekday is returned by ParseWeekday for unrecognised names.
var ErrUnknownWeekday = errors.New("enums: unknown weekday")

// Weekday is a defined type over int. The definition is what makes it an
// enum: a plain 3 no longer passes where a Weekday is wanted without an
// explicit conversion.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// String lets %v and %s print the name instead of the underlying int.
func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// IsWeekend reports whether d falls on the weekend.
func (d Weekday) IsWeekend() bool { return d == Saturday || d == Sunday }

// ParseWeekday is the inverse of String, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(name, s) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// Permission is a bit set. Each constant occupies its own bit, so values
// combine with |, test with &, and clear with &^.
type Permission uint8

const (
	PermRead Permission = 1 << iota
	PermWrite
	PermExec
)

// Has reports whether every bit in flag is set in p.
func (p Permission) Has(flag Permission) bool { return p&flag == flag }

// With returns p with flag added.
func (p Permission) With(flag Permission) Permission { return p | flag }

// Without returns p with flag cleared.
func (p Permission) Without(flag Permission) Permission { return p &^ flag }

func (p Permission) String() string {
	if p == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	if p.Has(PermRead) {
		parts = append(parts, "read")
	}
	if p.Has(PermWrite) {
		parts = append(parts, "write")
	}
	if p.Has(PermExec) {
		parts = append(parts, "exec")
	}
	if rest := p &^ (PermRead | PermWrite | PermExec); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   10,
		Slug:     "enums",
		Title:    "Enums via iota",
		Part:     curriculum.PartFundamentals,
		Synopsis: "typed constants, iota counting, String(), bit flags",
		Topics:   []string{"iota", "constants", "Stringer", "bitmask"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Enums via iota")

	nb.Step("iota counts const lines")
	const (
		first  = iota // 0
		second        // 1, repeats the implicit "= iota"
		_             // 2 is burned on purpose
		fourth        // 3
	)
	nb.Sayf("first=%d second=%d fourth=%d (the blank identifier ate 2)", first, second, fourth)
	nb.Say("iota restarts at 0 in every const block and can sit inside any")
	nb.Say("expression: 1<<iota builds powers of two, see Permission below.")

	nb.Step("A defined type turns ints into an enum")
	day := Wednesday
	nb.Sayf("day := Wednesday  -> %v (String() supplies the name)", day)
	nb.Sayf("int(day)          -> %d (the representation is still an int)", int(day))
	nb.Sayf("Weekday(42)       -> %v (out-of-range values stay visible)", Weekday(42))
	nb.Say("Passing a bare int where a Weekday is wanted is a compile error;")
	nb.Say("that refusal to mix is the point of the defined type.")

	nb.Step("Enums switch and compare like any value")
	for d := Sunday; d <= Saturday; d++ {
		if d.IsWeekend() {
			nb.Sayf("%-9v weekend", d)
		}
	}

	nb.Step("Parse is the inverse of String")
	d, err := ParseWeekday("friday")
	nb.Sayf("ParseWeekday(\"friday\")  -> %v, %v", d, err)
	_, err = ParseWeekday("Caturday")
	nb.Sayf("ParseWeekday(\"Caturday\") -> error: %v", err)

	nb.Step("Bit flags: 1<<iota plus bitwise operators")
	perms := PermRead.With(PermWrite)
	nb.Sayf("PermRead.With(PermWrite)  -> %v (bits %03b)", perms, uint8(perms))
	nb.Sayf("perms.Has(PermWrite)      -> %v", perms.Has(PermWrite))
	nb.Sayf("perms.Has(PermExec)       -> %v", perms.Has(PermExec))
	nb.Sayf("perms.Without(PermWrite)  -> %v", perms.Without(PermWrite))
	nb.Sayf("zero value                -> %v", Permission(0))

	nb.Takeaways(
		"enum = defined type + iota const block + String()",
		"start real enums at iota+1 when the zero value should mean unset",
		"String/Parse give names on the wire, ints in memory",
		"flags are 1<<iota with | to combine, & to test, &^ to clear",
	)
	return nb.Err()
}
