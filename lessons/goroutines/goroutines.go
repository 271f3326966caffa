package goroutines

import (
	"context"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/golessons/curriculum"
)

// Counter is a mutex-guarded counter. RWMutex lets any number of Value
// calls proceed together while Inc holds the write lock alone.
type Counter struct {
	mu sync.RWMutex
	n  int64
}

// Inc adds one.
func (c *Counter) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.n
}

// AtomicCounter does the same job lock-free for the single-word case.
type AtomicCounter struct {
	n atomic.Int64
}

// Inc adds one.
func (c *AtomicCounter) Inc() { c.n.Add(1) }

// Value returns the current count.
func (c *AtomicCounter) Value() int64 { return c.n.Load() }

// ParallelSum splits xs into ranges, sums each in its own goroutine, and
// combines the partials. Each goroutine writes only its own slot, so no
// lock is needed: not sharing beats synchronising.
func ParallelSum(xs []int, workers int) int {
	if len(xs) == 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(xs) {
		workers = len(xs)
	}

	partials := make([]int, workers)
	chunk := (len(xs) + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		lo := i * chunk
		hi := lo + chunk
		if hi > len(xs) {
			hi = len(xs)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range xs[lo:hi] {
				partials[i] += v
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, p := range partials {
		total += p
	}
	return total
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   16,
		Slug:     "goroutines",
		Title:    "Goroutines and shared state",
		Part:     curriculum.PartConcurrency,
		Synopsis: "go statement, WaitGroup, mutexes, atomics, race discipline",
		Topics:   []string{"goroutine", "WaitGroup", "Mutex", "RWMutex", "atomic", "race"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Goroutines and shared state")

	nb.Step("The go statement")
	done := make(chan struct{})
	go func() {
		defer close(done)
		nb.Say("hello from another goroutine")
	}()
	<-done
	nb.Say("go f() returns immediately; the program exits when main does,")
	nb.Say("finished goroutines or not. Something must wait: a channel")
	nb.Say("here, a WaitGroup below.")

	nb.Step("WaitGroup: fork, then join")
	var wg sync.WaitGroup
	var mu sync.Mutex
	var squares []int
	for i := 1; i <= 5; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			squares = append(squares, i*i)
			mu.Unlock()
		}()
	}
	wg.Wait()
	sort.Ints(squares) // completion order is scheduling, not submission
	nb.Sayf("5 goroutines squared their i -> %v (sorted: arrival order is random)", squares)
	nb.Say("Add before go, Done via defer, Wait in the parent. Since Go")
	nb.Say("1.22 each loop iteration gets a fresh i, so the closure capture")
	nb.Say("above is safe; older code passed i as an argument.")

	nb.Step("The data race, and cure #1: a mutex")
	nb.Say("Two goroutines doing n++ unsynchronised is a data race: the")
	nb.Say("increment is load-add-store, and interleavings lose updates.")
	nb.Say("The -race detector catches these at runtime; fix with a lock:")
	var c Counter
	raceFree(100, 100, c.Inc)
	nb.Sayf("100 goroutines x 100 locked Inc()  -> %d (nothing lost)", c.Value())

	nb.Step("Cure #2: atomics for single words")
	var ac AtomicCounter
	raceFree(100, 100, ac.Inc)
	nb.Sayf("same load on atomic.Int64.Add(1)   -> %d", ac.Value())
	var flag atomic.Bool
	nb.Sayf("CompareAndSwap(false, true) first  -> %v", flag.CompareAndSwap(false, true))
	nb.Sayf("CompareAndSwap(false, true) again  -> %v (already true)", flag.CompareAndSwap(false, true))
	nb.Say("Atomics cover counters and flags. The moment two values must")
	nb.Say("change together, you are back to a mutex.")

	nb.Step("Cure #3: do not share")
	total := ParallelSum([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 3)
	nb.Sayf("ParallelSum(1..10, workers=3) -> %d", total)
	nb.Say("Each worker owns one slot of the partials slice. Disjoint")
	nb.Say("writes need no lock, and the combine happens after Wait.")

	nb.Takeaways(
		"something must wait for goroutines: channels or WaitGroup",
		"guard shared state with one mutex, or one atomic word",
		"run tests with -race; it turns heisenbugs into stack traces",
		"the best synchronisation is owning your data outright",
	)
	return nb.Err()
}

// raceFree runs n goroutines calling f k times each and waits for all.
func raceFree(n, k int, f func()) {
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
