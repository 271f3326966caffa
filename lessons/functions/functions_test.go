package functions_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/lessons/functions"
)

func TestLessonMetadata(t *testing.T) {
	l := functions.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 6, l.Number)
	assert.Equal(t, "functions", l.Slug)
}

func TestMinMax(t *testing.T) {
	lo, hi, err := functions.MinMax(7)
	require.NoError(t, err)
	assert.Equal(t, 7, lo)
	assert.Equal(t, 7, hi)

	lo, hi, err = functions.MinMax(-5, -1, -9)
	require.NoError(t, err)
	assert.Equal(t, -9, lo)
	assert.Equal(t, -1, hi)

	_, _, err = functions.MinMax()
	assert.ErrorIs(t, err, functions.ErrNoInput)
}

// TestAdderIsolation: two closures never share captured state.
func TestAdderIsolation(t *testing.T) {
	a := functions.Adder(0)
	b := functions.Adder(0)
	a(10)
	assert.Equal(t, 1, b(1), "b must not see a's additions")
	assert.Equal(t, 11, a(1))
}

func TestFactorial(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 6: 720, 10: 3628800}
	for n, want := range cases {
		got, err := functions.Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Factorial(%d)", n)
	}
	_, err := functions.Factorial(-3)
	assert.ErrorIs(t, err, functions.ErrNegativeInput)
}

func TestRunWritesDemonstration(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, functions.Run(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "[body second deferred first deferred]")
	assert.Contains(t, out, "deferred saw counter = 0")
	assert.Contains(t, out, "Factorial(10) -> 3628800")
}
