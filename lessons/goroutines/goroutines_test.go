package goroutines_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/goroutines"
)

func TestLessonMetadata(t *testing.T) {
	l := goroutines.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 16, l.Number)
	assert.Equal(t, "goroutines", l.Slug)
	assert.Equal(t, curriculum.PartConcurrency, l.Part)
}

// hammer fires n goroutines doing k calls each, the classic way to make a
// race detector earn its keep.
func hammer(n, k int, f func()) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < k; j++ {
				f()
			}
		}()
	}
	wg.Wait()
}

func TestCounterUnderContention(t *testing.T) {
	var c goroutines.Counter
	hammer(50, 200, c.Inc)
	assert.Equal(t, int64(10_000), c.Value())
}

func TestAtomicCounterUnderContention(t *testing.T) {
	var c goroutines.AtomicCounter
	hammer(50, 200, c.Inc)
	assert.Equal(t, int64(10_000), c.Value())
}

func TestParallelSum(t *testing.T) {
	xs := make([]int, 1000)
	want := 0
	for i := range xs {
		xs[i] = i + 1
		want += i + 1
	}

	for _, workers := range []int{-1, 0, 1, 3, 7, 1000, 5000} {
		assert.Equalf(t, want, goroutines.ParallelSum(xs, workers),
			"workers=%d", workers)
	}

	assert.Zero(t, goroutines.ParallelSum(nil, 4))
	assert.Equal(t, 42, goroutines.ParallelSum([]int{42}, 8))
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, goroutines.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Goroutines and shared state")
	assert.Contains(t, out, "[1 4 9 16 25]")
	assert.Contains(t, out, "locked Inc()  -> 10000")
	assert.Contains(t, out, "ParallelSum(1..10, workers=3) -> 55")
	assert.Contains(t, out, "Key takeaways:")
}
