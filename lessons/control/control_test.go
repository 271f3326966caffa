package control_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/lessons/control"
)

func TestLessonMetadata(t *testing.T) {
	l := control.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 5, l.Number)
	assert.Equal(t, "control", l.Slug)
}

func TestFizzBuzzBoundaries(t *testing.T) {
	assert.Equal(t, "FizzBuzz", control.FizzBuzz(0), "0 divides everything")
	assert.Equal(t, "Fizz", control.FizzBuzz(-3))
	assert.Equal(t, "Buzz", control.FizzBuzz(-5))
	assert.Equal(t, "FizzBuzz", control.FizzBuzz(45))
	assert.Equal(t, "7", control.FizzBuzz(7))
}

func TestFirstDivisor(t *testing.T) {
	assert.Equal(t, 2, control.FirstDivisor(2))
	assert.Equal(t, 2, control.FirstDivisor(4))
	assert.Equal(t, 3, control.FirstDivisor(9))
	assert.Equal(t, 13, control.FirstDivisor(13*17))
	assert.Equal(t, 7919, control.FirstDivisor(7919), "large prime returns itself")
}

func TestRunWritesDemonstration(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, control.Run(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "Fizz")
	assert.Contains(t, out, "Collatz(27) reaches 1 in 111 steps")
	assert.Contains(t, out, "labeled break")
}
