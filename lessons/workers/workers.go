package workers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/golessons/curriculum"
)

// Process applies f to every input with at most `workers` goroutines in
// flight. Results keep input order; the first failure cancels the rest
// and is returned.
func Process(ctx context.Context, inputs []int, workers int, f func(context.Context, int) (int, error)) ([]int, error) {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	out := make([]int, len(inputs))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := f(ctx, in)
			if err != nil {
				return fmt.Errorf("workers: input %d: %w", in, err)
			}
			out[i] = v // each goroutine owns exactly one slot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FanIn merges any number of channels into one, closing the output once
// every input has closed.
func FanIn[T any](chs ...<-chan T) <-chan T {
	out := make(chan T)
	var wg sync.WaitGroup
	wg.Add(len(chs))
	for _, ch := range chs {
		ch := ch
		go func() {
			defer wg.Done()
			for v := range ch {
				out <- v
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// WithLimit runs n copies of task concurrently but admits at most `limit`
// at a time through a weighted semaphore. It reports the peak concurrency
// actually observed, which the semaphore guarantees never exceeds limit.
func WithLimit(ctx context.Context, n, limit int, task func(i int)) (peak int64, err error) {
	sem := semaphore.NewWeighted(int64(limit))
	var cur, high atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return high.Load(), err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			c := cur.Add(1)
			for {
				p := high.Load()
				if c <= p || high.CompareAndSwap(p, c) {
					break
				}
			}
			task(i)
			cur.Add(-1)
		}()
	}
	wg.Wait()
	return high.Load(), nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   18,
		Slug:     "workers",
		Title:    "Worker pools and errgroup",
		Part:     curriculum.PartConcurrency,
		Synopsis: "pools, fan-out/in, errgroup limits, semaphores, singleflight",
		Topics:   []string{"worker pool", "errgroup", "semaphore", "fan-in", "singleflight"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Worker pools and errgroup")

	nb.Step("The classic pool, by hand")
	jobs := make(chan int)
	results := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- j * j
			}
		}()
	}
	go func() { wg.Wait(); close(results) }()
	go func() {
		for i := 1; i <= 6; i++ {
			jobs <- i
		}
		close(jobs)
	}()
	var squares []int
	for v := range results {
		squares = append(squares, v)
	}
	sort.Ints(squares)
	nb.Sayf("3 workers, 6 jobs -> %v (sorted: completion order varies)", squares)
	nb.Say("Four moving parts: feed jobs, close jobs, workers range until")
	nb.Say("closed, and a closer goroutine shuts results after wg.Wait.")

	nb.Step("errgroup: the pool with errors and a limit built in")
	doubled, err := Process(ctx, []int{1, 2, 3, 4, 5, 6, 7, 8}, 3, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	nb.Sayf("Process(1..8, x2, limit 3) -> %v, err=%v", doubled, err)
	nb.Say("Output order matches input order because each goroutine writes")
	nb.Say("only its own slot. SetLimit(3) keeps at most three in flight.")

	nb.Step("First error wins, the rest get cancelled")
	_, err = Process(ctx, []int{1, 2, 3}, 2, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("flaky dependency")
		}
		return n, nil
	})
	nb.Sayf("failing on input 2 -> %v", err)
	nb.Say("errgroup.WithContext cancels the shared ctx on first failure;")
	nb.Say("well-behaved tasks notice and bail early.")

	nb.Step("semaphore.Weighted: a limit you can wrap around anything")
	peak, err := WithLimit(ctx, 12, 3, func(int) {})
	nb.Sayf("12 tasks, limit 3 -> peak observed %d (<= 3: %v), err=%v", peak, peak <= 3, err)
	nb.Say("Weighted also does multi-slot acquires: a big job can take 2")
	nb.Say("of 3 permits, which a plain buffered-channel semaphore cannot.")

	nb.Step("Fan-out, fan-in")
	odd := make(chan int, 3)
	even := make(chan int, 3)
	for _, v := range []int{1, 3, 5} {
		odd <- v
	}
	for _, v := range []int{2, 4, 6} {
		even <- v
	}
	close(odd)
	close(even)
	var merged []int
	for v := range FanIn(odd, even) {
		merged = append(merged, v)
	}
	sort.Ints(merged)
	nb.Sayf("FanIn(odd, even) -> %v", merged)
	nb.Say("FanIn closes its output only after every source closed; the")
	nb.Say("WaitGroup inside is what makes that safe.")

	nb.Step("singleflight: duplicate calls collapse into one")
	var g singleflight.Group
	var calls atomic.Int64
	gate := make(chan struct{})
	fn := func() (any, error) {
		calls.Add(1)
		<-gate
		return "config-v1", nil
	}
	waiters := make([]<-chan singleflight.Result, 5)
	for i := range waiters {
		waiters[i] = g.DoChan("config", fn)
	}
	close(gate)
	shared := 0
	for _, ch := range waiters {
		if r := <-ch; r.Shared {
			shared++
		}
	}
	nb.Sayf("5 concurrent DoChan(\"config\") -> fn ran %d time(s), %d results shared", calls.Load(), shared)
	nb.Say("While a key is in flight, later callers attach to the same")
	nb.Say("result. Cache stampedes become a single upstream fetch.")

	nb.Takeaways(
		"bound concurrency; unbounded goroutines are a memory leak with extra steps",
		"errgroup gives fork-join, limits, and first-error cancellation",
		"semaphore.Weighted wraps a limit around code you cannot restructure",
		"singleflight deduplicates identical in-flight work",
	)
	return nb.Err()
}
