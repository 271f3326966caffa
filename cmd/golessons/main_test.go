package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
)

func TestCourseIsComplete(t *testing.T) {
	course := Course()
	require.Equal(t, 38, course.Len())

	for i, l := range course.All() {
		assert.Equal(t, i+1, l.Number, "lesson numbers must be contiguous from 1")
		require.NoError(t, l.Validate())
	}
	for p := curriculum.PartFundamentals; p <= curriculum.PartEngineering; p++ {
		assert.NotEmpty(t, course.Part(p), "part %s has no lessons", p)
	}
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"-list"}))

	out := buf.String()
	assert.Contains(t, out, "Fundamentals")
	assert.Contains(t, out, "Concurrency")
	assert.Contains(t, out, "Standard library")
	assert.Contains(t, out, "Engineering practice")
	assert.Contains(t, out, " 1  hello")
	assert.Contains(t, out, "38  graphs")
	assert.Contains(t, out, "38 lessons.")
}

func TestRunSingleLessonBySlug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"hello"}))
	assert.Contains(t, buf.String(), "Hello, Go")
}

func TestRunLessonByNumber(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"7"}))
	assert.Contains(t, buf.String(), "Pointers")
}

func TestRunSeveralLessonsInOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"hello", "2"}))

	out := buf.String()
	hello := bytes.Index(buf.Bytes(), []byte("Hello, Go"))
	vars := bytes.Index(buf.Bytes(), []byte("Variables, zero values, constants"))
	assert.GreaterOrEqual(t, hello, 0, out)
	assert.Greater(t, vars, hello, "lessons must run in the order given")
}

func TestRunPart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"-part", "concurrency"}))

	out := buf.String()
	assert.Contains(t, out, "Goroutines and shared state")
	assert.Contains(t, out, "Channels and select")
	assert.Contains(t, out, "Worker pools and errgroup")
	assert.Contains(t, out, "Futures from channels")
}

func TestRunUnknownLesson(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{"quantum"})
	require.ErrorIs(t, err, curriculum.ErrLessonNotFound)
}

func TestRunUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{"-no-such-flag"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunInvalidPart(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{"-part", "5"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid part")
}

func TestRunInvalidLogFlags(t *testing.T) {
	var buf bytes.Buffer

	err := run(&buf, []string{"-log-level", "loud", "hello"})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	err = run(&buf, []string{"-log-format", "xml", "hello"})
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, nil))
	assert.Contains(t, buf.String(), "Usage:")
}

func TestResolvePart(t *testing.T) {
	cases := []struct {
		in   string
		want curriculum.Part
	}{
		{"1", curriculum.PartFundamentals},
		{"fundamentals", curriculum.PartFundamentals},
		{"2", curriculum.PartConcurrency},
		{"CONCURRENCY", curriculum.PartConcurrency},
		{"stdlib", curriculum.PartStdlib},
		{"4", curriculum.PartEngineering},
		{" engineering ", curriculum.PartEngineering},
	}
	for _, tc := range cases {
		got, err := resolvePart(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := resolvePart("advanced")
	require.Error(t, err)
}

// TestReadmeListsEveryLesson keeps the README index honest: each
// registered lesson must appear there, by path.
func TestReadmeListsEveryLesson(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "README.md"))
	require.NoError(t, err)

	readme := string(raw)
	for _, l := range Course().All() {
		assert.Contains(t, readme, "lessons/"+l.Slug, "README is missing lesson %s", l.Ref())
	}
}
