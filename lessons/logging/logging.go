package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/golessons/curriculum"
)

// dropTime removes the built-in time attribute so two runs of the same
// code produce identical lines.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// NewText returns a timestamp-free slog text logger writing to w.
func NewText(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// NewJSON returns a timestamp-free slog JSON logger writing to w.
func NewJSON(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// NewZero returns a zerolog logger writing bare JSON events to w.
func NewZero(w io.Writer) zerolog.Logger {
	return zerolog.New(w)
}

// Bridge adapts a zerolog logger to the logr facade, the same trick
// libraries use to stay backend-agnostic.
func Bridge(zl *zerolog.Logger) logr.Logger {
	return zerologr.New(zl)
}

// Token is a credential that redacts itself when logged. Any type can
// opt in by implementing slog.LogValuer.
type Token string

// LogValue hides the token's content from every handler.
func (Token) LogValue() slog.Value {
	return slog.StringValue("REDACTED")
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   30,
		Slug:     "logging",
		Title:    "Logging",
		Part:     curriculum.PartEngineering,
		Synopsis: "log, slog levels/groups/LogValuer, zerolog, the logr facade",
		Topics:   []string{"log", "slog", "zerolog", "logr", "structured logging"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Logging")

	// Loggers write into buf, and emit replays the captured lines into
	// the transcript behind a "|" gutter.
	var buf bytes.Buffer
	emit := func() {
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			if line != "" {
				nb.Sayf("| %s", line)
			}
		}
		buf.Reset()
	}

	nb.Step("The old guard: package log")
	legacy := log.New(&buf, "app | ", 0)
	legacy.Println("started")
	legacy.Printf("listening on port %d", 8080)
	emit()
	nb.Say("One destination, one prefix, flat strings. Flags add date and")
	nb.Say("time (omitted here); log.Fatal exits the process and log.Panic")
	nb.Say("panics, so neither belongs in library code.")

	nb.Step("slog: levels and key=value attributes")
	lv := new(slog.LevelVar) // defaults to Info
	logger := NewText(&buf, lv)
	logger.Info("server booted", "port", 8080, "tls", false)
	logger.Warn("cache miss rate high", "rate", 0.42)
	logger.Debug("this is filtered out")
	emit()
	nb.Say("Attributes are typed pairs, not string soup: handlers can")
	nb.Say("index, filter and ship them. Debug vanished because the")
	nb.Say("handler level is Info.")

	nb.Step("Levels are data, not code")
	lv.Set(slog.LevelDebug)
	logger.Debug("cache warmed", "entries", 128)
	emit()
	nb.Say("The handler shares a LevelVar, so verbosity can change at")
	nb.Say("runtime: flip one variable instead of redeploying.")
	lv.Set(slog.LevelInfo)

	nb.Step("Groups give attributes a namespace")
	logger.WithGroup("req").Info("handled", "method", "GET", "status", 200)
	jlog := NewJSON(&buf, lv)
	jlog.Info("handled", slog.Group("req",
		slog.String("method", "GET"),
		slog.Int("status", 200),
	))
	emit()
	nb.Say("The same group renders as req.method=... in text and as a")
	nb.Say("nested object in JSON. Swapping handlers never touches the")
	nb.Say("call sites.")

	nb.Step("LogValuer keeps secrets out of the logs")
	logger.Info("authenticated", "user", "ada", "token", Token("s3cr3t-value"))
	emit()
	nb.Say("Token implements slog.LogValuer, so every handler sees the")
	nb.Say("redacted value. The cure for leaked credentials is making the")
	nb.Say("type itself refuse to print.")

	nb.Step("zerolog: JSON events, zero allocations")
	zl := NewZero(&buf)
	zl.Info().Str("user", "ada").Int("rows", 3).Msg("query done")
	billing := zl.With().Str("component", "billing").Logger()
	billing.Info().Msg("invoice sent")
	warned := zl.Level(zerolog.WarnLevel)
	warned.Info().Msg("dropped by level filter")
	emit()
	nb.Say("Each event is built field by field and serialised straight")
	nb.Say("into the writer. Child loggers stamp their context onto every")
	nb.Say("event; the level filter discarded the last Info entirely.")

	nb.Step("logr: one facade, interchangeable engines")
	sink := NewZero(&buf)
	lr := Bridge(&sink).WithName("engine")
	lr.Info("logr speaks zerolog", "answer", 42)
	lr.Error(errors.New("disk full"), "write failed", "path", "data.bin")
	emit()
	nb.Say("Libraries accept a logr.Logger and stay neutral; applications")
	nb.Say("pick the backend (zerolog here, via zerologr) at the edge.")
	nb.Say("The V(n) ladder expresses verbosity without naming levels.")

	nb.Step("Picking a logger")
	nb.Say("stdlib log   - fine for tiny tools and quick scripts")
	nb.Say("slog         - the default choice: structured, in the stdlib")
	nb.Say("zerolog      - when log volume makes allocations matter")
	nb.Say("logr         - for libraries that must not choose for their users")

	nb.Takeaways(
		"log lines are data; structure them from the start",
		"levels belong to handlers and can change at runtime",
		"types that implement LogValuer cannot leak themselves",
		"libraries log through facades, applications choose backends",
	)
	return nb.Err()
}
