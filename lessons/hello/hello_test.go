package hello_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/lessons/hello"
)

// TestLessonMetadata pins the registry contract for this package.
func TestLessonMetadata(t *testing.T) {
	l := hello.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 1, l.Number)
	assert.Equal(t, "hello", l.Slug)
}

// TestRunWritesDemonstration smoke-tests the printed walkthrough.
func TestRunWritesDemonstration(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, hello.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Hello, Go!")
	assert.Contains(t, out, "%+v")
	assert.Contains(t, out, "Key takeaways:")
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello, gophers!", hello.Greeting("gophers"))
}
