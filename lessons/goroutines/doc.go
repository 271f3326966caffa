// Package goroutines is lesson 16: goroutines and shared-memory safety.
//
// What
//
//   - The go statement, and why main does not wait for anyone.
//   - sync.WaitGroup for "wait until they all finish".
//   - Data races, the -race detector, and the two standard cures:
//     sync.Mutex/RWMutex and sync/atomic.
//   - ParallelSum: splitting work across goroutines without sharing.
//
// Why
//
//	A goroutine costs a few kilobytes of stack, so Go programs start them
//	by the thousand where other runtimes pool threads. The discipline that
//	makes this safe is small: every shared variable is either protected by
//	one mutex, accessed atomically, or better, not shared at all.
package goroutines
