// Package futures is lesson 19: promise-style composition over channels.
//
// Go has no Future type because a goroutine plus a channel already is
// one. This lesson builds the thinnest wrapper that makes the pattern
// reusable, then composes it:
//
//   - Go(fn) starts fn and returns a Future for its result.
//   - Await blocks with a context; Ready polls.
//   - Then chains a transformation onto a pending result.
//   - All gathers several futures in order; First takes whichever
//     completes first.
//   - Resolve and Reject make pre-completed futures for tests and fakes.
//
// The whole type is ~30 lines. That is the lesson: before importing a
// promise library, check whether a channel spells it already.
package futures
