package logging_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/logging"
)

func TestLessonMetadata(t *testing.T) {
	l := logging.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 30, l.Number)
	assert.Equal(t, "logging", l.Slug)
	assert.Equal(t, curriculum.PartEngineering, l.Part)
}

func TestNewTextFiltersByLevel(t *testing.T) {
	var sb strings.Builder
	logger := logging.NewText(&sb, slog.LevelWarn)
	logger.Info("too quiet")
	logger.Warn("loud enough", "k", 1)

	out := sb.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, `level=WARN msg="loud enough" k=1`)
	assert.NotContains(t, out, "time=", "timestamps must be stripped")
}

func TestNewJSONGroups(t *testing.T) {
	var sb strings.Builder
	logger := logging.NewJSON(&sb, slog.LevelInfo)
	logger.Info("handled", slog.Group("req", slog.String("method", "GET")))

	assert.JSONEq(t,
		`{"level":"INFO","msg":"handled","req":{"method":"GET"}}`,
		strings.TrimSpace(sb.String()))
}

func TestTokenRedactsItself(t *testing.T) {
	var sb strings.Builder
	logger := logging.NewText(&sb, slog.LevelInfo)
	logger.Info("auth", "token", logging.Token("super-secret"))

	out := sb.String()
	assert.Contains(t, out, "token=REDACTED")
	assert.NotContains(t, out, "super-secret")
}

func TestZeroChildLoggers(t *testing.T) {
	var sb strings.Builder
	zl := logging.NewZero(&sb)
	child := zl.With().Str("component", "billing").Logger()
	child.Info().Msg("invoice sent")

	assert.Equal(t,
		`{"level":"info","component":"billing","message":"invoice sent"}`,
		strings.TrimSpace(sb.String()))
}

func TestBridgeRoutesThroughZerolog(t *testing.T) {
	var sb strings.Builder
	zl := logging.NewZero(&sb)
	lr := logging.Bridge(&zl)

	lr.Info("hello from logr", "answer", 42)
	lr.Error(errors.New("disk full"), "write failed")

	out := sb.String()
	assert.Contains(t, out, `"answer":42`)
	assert.Contains(t, out, `"message":"hello from logr"`)
	assert.Contains(t, out, `"error":"disk full"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, logging.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Logging")
	assert.Contains(t, out, "| app | listening on port 8080")
	assert.Contains(t, out, `| level=INFO msg="server booted" port=8080 tls=false`)
	assert.Contains(t, out, "| level=DEBUG msg=\"cache warmed\" entries=128")
	assert.Contains(t, out, "| level=INFO msg=handled req.method=GET req.status=200")
	assert.Contains(t, out, "token=REDACTED")
	assert.Contains(t, out, `| {"level":"info","user":"ada","rows":3,"message":"query done"}`)
	assert.Contains(t, out, `"component":"billing"`)
	assert.NotContains(t, out, "dropped by level filter")
	assert.Contains(t, out, `"error":"disk full"`)
	assert.Contains(t, out, "Key takeaways:")
}
