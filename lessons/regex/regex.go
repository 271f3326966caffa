package regex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNoMatch is returned by ParseLogLine when a line has the wrong shape.
var ErrNoMatch = errors.New("regex: line does not match")

// Compiled once at init; MustCompile panics on a bad pattern, which is
// the right behaviour for a literal you wrote yourself.
var (
	logLine = regexp.MustCompile(`^(?P<level>[A-Z]+)\s+(?P<component>[\w.-]+)\s+(?P<msg>.*)$`)
	nonWord = regexp.MustCompile(`[^a-z0-9]+`)
	email   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ParseLogLine splits "LEVEL component message" into its named groups.
func ParseLogLine(line string) (map[string]string, error) {
	m := logLine.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, line)
	}
	fields := make(map[string]string, 3)
	for _, name := range []string{"level", "component", "msg"} {
		fields[name] = m[logLine.SubexpIndex(name)]
	}
	return fields, nil
}

// Slugify lowers s and collapses every non-alphanumeric run into one
// hyphen, trimming strays at the ends.
func Slugify(s string) string {
	s = nonWord.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// ExtractEmails returns every email-shaped substring, in order.
func ExtractEmails(text string) []string {
	return email.FindAllString(text, -1)
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   23,
		Slug:     "regex",
		Title:    "Regular expressions",
		Part:     curriculum.PartStdlib,
		Synopsis: "compile-once patterns, groups, replace, split, RE2 limits",
		Topics:   []string{"regexp", "groups", "named captures", "replace", "RE2"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Regular expressions")

	nb.Step("Compile once, match forever")
	nb.Say("regexp.Compile returns (pattern, error); MustCompile panics,")
	nb.Say("fitting for literals known at build time. Both belong at")
	nb.Say("package level: compiling per call is the classic regex tax.")
	nb.Sayf("logLine pattern: %s", logLine.String())

	nb.Step("Matching and finding")
	semver := regexp.MustCompile(`v(\d+)\.(\d+)\.(\d+)`)
	nb.Sayf("MatchString(\"release v1.22.3\")   -> %v", semver.MatchString("release v1.22.3"))
	nb.Sayf("FindString(\"v1.22.3 then v2.0.1\") -> %s", semver.FindString("v1.22.3 then v2.0.1"))
	nb.Sayf("FindAllString(..., -1)            -> %v", semver.FindAllString("v1.22.3 then v2.0.1", -1))
	nb.Say("-1 means no limit; the count parameter trips everyone once.")

	nb.Step("Capture groups")
	m := semver.FindStringSubmatch("deployed v1.22.3 today")
	nb.Sayf("FindStringSubmatch -> %q", m)
	nb.Sayf("major=%s minor=%s patch=%s", m[1], m[2], m[3])

	nb.Step("Named groups read better at a distance")
	fields, err := ParseLogLine("ERROR auth.login token expired for user 42")
	if err != nil {
		return err
	}
	nb.Sayf("level=%s component=%s", fields["level"], fields["component"])
	nb.Sayf("msg=%q", fields["msg"])
	_, err = ParseLogLine("not a log line at all")
	nb.Sayf("malformed line -> %v", errors.Is(err, ErrNoMatch))

	nb.Step("Replace, with references and with functions")
	dated := regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	nb.Sayf("US date to ISO -> %s", dated.ReplaceAllString("due 03/15/2024", "$3-$1-$2"))
	censored := email.ReplaceAllStringFunc("write ada@example.org or ops@corp.io",
		func(addr string) string { return strings.Repeat("*", len(addr)) })
	nb.Sayf("censor func    -> %s", censored)

	nb.Step("Split on a pattern")
	csvish := regexp.MustCompile(`\s*[,;]\s*`)
	nb.Sayf("split %q -> %q", "a, b;c ,  d", csvish.Split("a, b;c ,  d", -1))

	nb.Step("Practical helpers built from the above")
	nb.Sayf("Slugify(\"Hello, World!  Go 1.22\") -> %q", Slugify("Hello, World!  Go 1.22"))
	nb.Sayf("ExtractEmails(...) -> %v", ExtractEmails("cc ada@example.org and grace@navy.mil"))

	nb.Step("RE2 rules")
	nb.Say("No backtracking means no lookahead/lookbehind and no")
	nb.Say("backreferences in patterns, and in exchange matching is linear")
	nb.Say("in input size. Escape user input with regexp.QuoteMeta:")
	nb.Sayf("QuoteMeta(\"1+1=2?\") -> %s", regexp.QuoteMeta("1+1=2?"))

	nb.Takeaways(
		"MustCompile at package level; never compile in a loop",
		"named groups plus SubexpIndex make extractions readable",
		"ReplaceAll uses $1-style refs; use Func for computed rewrites",
		"RE2 trades fancy features for guaranteed linear time",
	)
	return nb.Err()
}
