package errs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/multierr"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNotFound is the package sentinel for missed lookups. Callers match it
// with errors.Is, never with string comparison.
var ErrNotFound = errors.New("errs: not found")

// ParseError is a custom error type: it carries the position so callers
// can point at the offending line. Extract it with errors.As.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("errs: line %d: %s", e.Line, e.Msg)
}

// Lookup fetches key from db, wrapping ErrNotFound with the key on a miss
// so the sentinel survives while the message gains context.
func Lookup(db map[string]string, key string) (string, error) {
	v, ok := db[key]
	if !ok {
		return "", fmt.Errorf("errs: lookup %q: %w", key, ErrNotFound)
	}
	return v, nil
}

// ParseKV splits a "key=value" line, reporting failures as *ParseError.
func ParseKV(line string, lineNo int) (key, value string, err error) {
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", &ParseError{Line: lineNo, Msg: "missing '='"}
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", "", &ParseError{Line: lineNo, Msg: "empty key"}
	}
	return k, strings.TrimSpace(v), nil
}

// CheckFields collects every missing required field into one error via
// multierr, instead of stopping at the first.
func CheckFields(fields map[string]string, required ...string) error {
	var err error
	for _, name := range required {
		if fields[name] == "" {
			err = multierr.Append(err, fmt.Errorf("errs: field %q missing", name))
		}
	}
	return err
}

// Recovered runs f, converting a panic into an ordinary error. This is the
// boundary pattern: recover once at the edge, return a value like always.
func Recovered(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("errs: recovered: %v", r)
		}
	}()
	f()
	return nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   13,
		Slug:     "errs",
		Title:    "Errors",
		Part:     curriculum.PartFundamentals,
		Synopsis: "sentinels, wrapping, Is/As/Join, multierror, panic/recover",
		Topics:   []string{"error", "wrapping", "errors.Is", "errors.As", "multierr", "recover"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Errors")

	nb.Step("error is a one-method interface")
	plain := errors.New("something broke")
	nb.Sayf("errors.New(...)       -> %v (%T)", plain, plain)
	nb.Say("No hierarchy, no checked lists, no throw. Functions return it,")
	nb.Say("callers inspect it, and if err != nil is the whole grammar.")

	nb.Step("Sentinels survive wrapping with %w")
	db := map[string]string{"host": "localhost"}
	_, err := Lookup(db, "port")
	nb.Sayf("Lookup(db, \"port\")             -> %v", err)
	nb.Sayf("errors.Is(err, ErrNotFound)    -> %v", errors.Is(err, ErrNotFound))
	wrapped := fmt.Errorf("loading config: %w", err)
	nb.Sayf("wrapped again                  -> %v", wrapped)
	nb.Sayf("Is still finds the sentinel    -> %v", errors.Is(wrapped, ErrNotFound))
	nb.Say("%w stores the cause; Is walks the chain. With %v instead the")
	nb.Say("chain is cut and Is stops working. Wrap deliberately.")

	nb.Step("Custom types carry data; errors.As extracts them")
	_, _, err = ParseKV("no equals sign here", 7)
	nb.Sayf("ParseKV(bad line)   -> %v", err)
	outer := fmt.Errorf("reading settings: %w", err)
	var pe *ParseError
	if errors.As(outer, &pe) {
		nb.Sayf("errors.As found it  -> line %d, msg %q", pe.Line, pe.Msg)
	}

	nb.Step("errors.Join: a tree, not a chain")
	joined := errors.Join(ErrNotFound, errors.New("disk full"))
	nb.Sayf("Join(...)                    -> %v", strings.ReplaceAll(joined.Error(), "\n", " | "))
	nb.Sayf("errors.Is(joined, NotFound)  -> %v (Is descends both branches)", errors.Is(joined, ErrNotFound))

	nb.Step("multierr: keep going, report everything")
	err = CheckFields(map[string]string{"name": "ada"}, "name", "email", "role")
	nb.Sayf("CheckFields(...)      -> %v", err)
	nb.Sayf("multierr.Errors(err)  -> %d individual errors", len(multierr.Errors(err)))
	nb.Say("Append on a nil error just returns the new one, so the loop")
	nb.Say("needs no special first-iteration case.")

	nb.Step("go-multierror: same idea, hashicorp flavour")
	var merr *multierror.Error
	merr = multierror.Append(merr, errors.New("first"))
	merr = multierror.Append(merr, errors.New("second"))
	nb.Sayf("len(merr.Errors)      -> %d", len(merr.Errors))
	var clean *multierror.Error
	nb.Sayf("empty ErrorOrNil()    -> %v (a real nil, dodging the typed-nil trap)", clean.ErrorOrNil())

	nb.Step("panic unwinds, recover catches, both stay rare")
	err = Recovered(func() { panic("boom") })
	nb.Sayf("Recovered(panic)          -> %v", err)
	zero := 0
	err = Recovered(func() { _ = 1 / zero })
	nb.Sayf("Recovered(divide by zero) -> %v", err)
	nb.Say("Use panic for unreachable states, recover at goroutine or")
	nb.Say("request boundaries. Everything else goes through error returns.")

	nb.Takeaways(
		"wrap with %w to add context without losing the cause",
		"errors.Is matches identity, errors.As matches and extracts a type",
		"aggregate independent failures; stop-at-first hides work from users",
		"panic is for bugs, not for I/O or user input",
	)
	return nb.Err()
}
