package datetime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrBadTimestamp is returned by ParseFlexible when no known layout fits.
var ErrBadTimestamp = errors.New("datetime: unrecognised timestamp")

// LayoutStamp is the human-friendly layout used across the lesson.
const LayoutStamp = "2006-01-02 15:04:05"

// layouts ParseFlexible tries, most specific first.
var layouts = []string{time.RFC3339, LayoutStamp, "2006-01-02"}

// ParseFlexible parses s with the first layout that fits.
func ParseFlexible(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}

// Age returns full years between born and now, counting birthdays rather
// than dividing days by 365.
func Age(born, now time.Time) int {
	years := now.Year() - born.Year()
	if born.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}

// NextBusinessDay returns the first Monday-to-Friday day after t.
func NextBusinessDay(t time.Time) time.Time {
	d := t.AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   15,
		Slug:     "datetime",
		Title:    "Time and duration",
		Part:     curriculum.PartFundamentals,
		Synopsis: "reference layout, duration math, monotonic clock, tickers",
		Topics:   []string{"time.Time", "Duration", "Format", "Parse", "ticker", "monotonic"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Time and duration")

	// A fixed instant keeps every line below reproducible.
	ref := time.Date(2024, time.March, 15, 14, 30, 45, 0, time.UTC)

	nb.Step("Constructing instants")
	nb.Sayf("time.Date(2024, March, 15, ...) -> %s", ref.Format(time.RFC3339))
	nb.Sayf("time.Unix(1700000000, 0).UTC()  -> %s", time.Unix(1_700_000_000, 0).UTC().Format(LayoutStamp))
	nb.Sayf("ref.Weekday()                   -> %v", ref.Weekday())
	nb.Sayf("zero value, IsZero()            -> %v", time.Time{}.IsZero())

	nb.Step("Formatting by example: the reference time")
	nb.Say("The layout string is not a pattern language; it is the one")
	nb.Say("reference instant Mon Jan 2 15:04:05 MST 2006 written the way")
	nb.Say("you want output to look. Fields count 1,2,3,4,5,6,7.")
	nb.Sayf("RFC3339     -> %s", ref.Format(time.RFC3339))
	nb.Sayf("Kitchen     -> %s", ref.Format(time.Kitchen))
	nb.Sayf("custom      -> %s", ref.Format("Mon, 02 Jan 2006"))
	nb.Sayf("LayoutStamp -> %s", ref.Format(LayoutStamp))

	nb.Step("Parsing, strictly and flexibly")
	t1, _ := time.Parse(time.RFC3339, "2024-03-15T14:30:45Z")
	nb.Sayf("time.Parse(RFC3339, ...)        -> %s", t1.Format(LayoutStamp))
	t2, _ := ParseFlexible("2024-03-15")
	nb.Sayf("ParseFlexible(\"2024-03-15\")     -> %s", t2.Format(LayoutStamp))
	_, err := ParseFlexible("15/03/2024")
	nb.Sayf("ParseFlexible(\"15/03/2024\")     -> error: %v", err)

	nb.Step("Duration is an int64 of nanoseconds with manners")
	d := 90 * time.Minute
	nb.Sayf("90 * time.Minute     -> %v", d)
	nb.Sayf("d.Hours()            -> %.1f", d.Hours())
	parsed, _ := time.ParseDuration("1h15m30s")
	nb.Sayf("ParseDuration        -> %v", parsed)
	nb.Sayf("parsed.Round(Minute) -> %v", parsed.Round(time.Minute))
	midnight := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	nb.Sayf("ref.Sub(midnight)    -> %v", ref.Sub(midnight))

	nb.Step("Add vs AddDate, and the month-overflow trap")
	nb.Sayf("ref.Add(90m)            -> %s", ref.Add(d).Format(LayoutStamp))
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	nb.Sayf("Jan 31 + AddDate(0,1,0) -> %s", jan31.AddDate(0, 1, 0).Format("2006-01-02"))
	nb.Say("February 31st normalises forward to March 2nd. When you mean")
	nb.Say("\"end of next month\", compute it, do not trust AddDate.")

	nb.Step("Equal vs ==")
	elsewhere := ref.In(time.FixedZone("UTC-5", -5*60*60))
	nb.Sayf("same instant, other zone: == -> %v", ref == elsewhere)
	nb.Sayf("                       Equal -> %v", ref.Equal(elsewhere))
	nb.Say("== compares struct fields including the location pointer.")
	nb.Say("Always compare instants with Equal, Before, After.")

	nb.Step("The monotonic clock rides inside time.Now()")
	start := time.Now()
	elapsed := time.Since(start)
	nb.Sayf("time.Since(start) >= 0 -> %v", elapsed >= 0)
	nb.Say("Now() carries wall plus monotonic readings; Sub and Since use")
	nb.Say("the monotonic one, immune to NTP jumps. Round(0) strips it")
	nb.Say("before storing or serialising an instant.")

	nb.Step("Timers and tickers")
	select {
	case <-time.After(time.Millisecond):
		nb.Say("time.After(1ms) fired: a one-shot timer as a channel")
	}
	ticker := time.NewTicker(time.Millisecond)
	ticks := 0
	for range ticker.C {
		ticks++
		if ticks == 3 {
			break
		}
	}
	ticker.Stop()
	nb.Sayf("collected %d ticks, then Stop() to release the ticker", ticks)

	nb.Step("Calendar helpers")
	born := time.Date(1989, time.November, 10, 0, 0, 0, 0, time.UTC)
	nb.Sayf("Age(born 1989-11-10, at ref)  -> %d", Age(born, ref))
	nb.Sayf("NextBusinessDay(Fri Mar 15)   -> %s", NextBusinessDay(ref).Format("Mon 2006-01-02"))

	nb.Takeaways(
		"format and parse with the reference time, not printf patterns",
		"Duration is typed nanoseconds; multiply units, never raw ints",
		"compare instants with Equal, never ==",
		"Stop tickers you start, and strip monotonic before persisting",
	)
	return nb.Err()
}
