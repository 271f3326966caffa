// Command golessons runs the curriculum: list the lessons, run one by
// number or slug, run a whole part, or run the entire course.
//
//	golessons -list
//	golessons pointers 17 workers
//	golessons -part concurrency
//	golessons -all
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/multierr"

	"github.com/katalvlaran/golessons/curriculum"
)

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the real program logic so tests can drive it with any
// writer and argument list.
func run(w io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("golessons", flag.ContinueOnError)
	flagSet.SetOutput(w)
	flagSet.Usage = func() {
		fmt.Fprint(w, `golessons - an annotated Go curriculum, one lesson per package.

Usage:
  golessons [options] [lesson ...]

Arguments:
  lesson
    A lesson number ("7") or slug ("pointers"). Several may be given;
    they run in the order written.

Options:
`)
		flagSet.PrintDefaults()
	}

	listFlag := flagSet.Bool("list", false, "Print the course index and exit.")
	allFlag := flagSet.Bool("all", false, "Run every lesson in course order.")
	partFlag := flagSet.String("part", "", "Run one part: 1-4 or its name (fundamentals, concurrency, stdlib, engineering).")
	logLevelFlag := flagSet.String("log-level", "info", "Runner log level: debug, info, warn, error.")
	logFormatFlag := flagSet.String("log-format", "text", "Runner log format: text or json.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	log, err := setupLogger(os.Stderr, *logFormatFlag, *logLevelFlag)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	course := Course()

	if *listFlag {
		printListing(w, course)
		return nil
	}

	// Lesson output goes to w; Ctrl+C cancels whatever is running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *allFlag:
		log.Info("running full course", slog.Int("lessons", course.Len()))
		return course.RunAll(ctx, w)

	case *partFlag != "":
		part, err := resolvePart(*partFlag)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return runPart(ctx, w, log, course, part)

	case flagSet.NArg() > 0:
		for _, key := range flagSet.Args() {
			log.Debug("running lesson", slog.String("key", key))
			if err := course.Run(ctx, w, key); err != nil {
				return err
			}
		}
		return nil

	default:
		flagSet.Usage()
		return nil
	}
}

// runPart executes every lesson of one part, aggregating failures the
// same way a full-course run does.
func runPart(ctx context.Context, w io.Writer, log *slog.Logger, course *curriculum.Registry, part curriculum.Part) error {
	lessons := course.Part(part)
	log.Info("running part",
		slog.String("part", part.String()),
		slog.Int("lessons", len(lessons)),
	)
	var errs error
	for _, l := range lessons {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return multierr.Append(errs, ctxErr)
		}
		if err := l.Run(ctx, w); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("lesson %s: %w", l.Slug, err))
		}
	}
	return errs
}

// printListing writes the course index grouped by part.
func printListing(w io.Writer, course *curriculum.Registry) {
	for p := curriculum.PartFundamentals; p <= curriculum.PartEngineering; p++ {
		fmt.Fprintf(w, "%s\n", p.String())
		for _, l := range course.Part(p) {
			fmt.Fprintf(w, "  %2d  %-12s %s\n", l.Number, l.Slug, l.Synopsis)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d lessons. Run one with: golessons <number|slug>\n", course.Len())
}

// resolvePart maps a -part value to its curriculum.Part.
func resolvePart(s string) (curriculum.Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "fundamentals":
		return curriculum.PartFundamentals, nil
	case "2", "concurrency":
		return curriculum.PartConcurrency, nil
	case "3", "stdlib", "standard library":
		return curriculum.PartStdlib, nil
	case "4", "engineering":
		return curriculum.PartEngineering, nil
	default:
		return 0, fmt.Errorf("invalid part %q: want 1-4 or fundamentals, concurrency, stdlib, engineering", s)
	}
}

// setupLogger builds the runner's own logger. Lesson output never goes
// through it, so stdout stays clean for the demonstrations.
func setupLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: want debug, info, warn, or error", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: want text or json", format)
	}
}
