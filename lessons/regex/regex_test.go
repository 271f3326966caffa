package regex_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/regex"
)

func TestLessonMetadata(t *testing.T) {
	l := regex.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 23, l.Number)
	assert.Equal(t, "regex", l.Slug)
	assert.Equal(t, curriculum.PartStdlib, l.Part)
}

func TestParseLogLine(t *testing.T) {
	fields, err := regex.ParseLogLine("INFO http.server listening on :8080")
	require.NoError(t, err)
	assert.Equal(t, "INFO", fields["level"])
	assert.Equal(t, "http.server", fields["component"])
	assert.Equal(t, "listening on :8080", fields["msg"])

	cases := []string{
		"",
		"lowercase start",
		"INFO", // level without component
	}
	for _, line := range cases {
		_, err := regex.ParseLogLine(line)
		assert.ErrorIsf(t, err, regex.ErrNoMatch, "line %q", line)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Go 1.22 Release Notes", "go-1-22-release-notes"},
		{"___", ""},
		{"simple", "simple"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, regex.Slugify(tc.in))
		})
	}
}

func TestExtractEmails(t *testing.T) {
	got := regex.ExtractEmails("ada@example.org, bogus@, grace@navy.mil")
	assert.Equal(t, []string{"ada@example.org", "grace@navy.mil"}, got)

	assert.Empty(t, regex.ExtractEmails("no addresses here"))
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, regex.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Regular expressions")
	assert.Contains(t, out, "major=1 minor=22 patch=3")
	assert.Contains(t, out, "US date to ISO -> due 2024-03-15")
	assert.Contains(t, out, `Slugify("Hello, World!  Go 1.22") -> "hello-world-go-1-22"`)
	assert.Contains(t, out, "Key takeaways:")
}
