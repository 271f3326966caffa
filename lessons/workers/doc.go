// Package workers is lesson 18: bounded concurrency.
//
// What
//
//   - The hand-rolled worker pool: jobs channel, N workers, WaitGroup,
//     close when done.
//   - errgroup.Group: structured fork-join with first-error propagation
//     and a built-in limit.
//   - semaphore.Weighted for capping concurrency around existing code.
//   - Fan-out/fan-in with a generic FanIn.
//   - singleflight for collapsing duplicate in-flight calls.
//
// Why
//
//	Unbounded goroutine creation is how services fall over: each waiting
//	goroutine pins memory and hammers whatever resource it is waiting on.
//	Every tool here is a way of saying "at most this many at once" while
//	keeping results ordered and failures visible.
//
// Complexity
//
//	Process runs len(inputs) tasks with at most `workers` in flight; the
//	output slice preserves input order regardless of completion order.
package workers
