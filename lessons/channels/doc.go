// Package channels is lesson 17: channels.
//
// What
//
//   - Unbuffered channels as rendezvous points; buffered ones as queues.
//   - close, range, and the comma-ok receive.
//   - Direction types <-chan and chan<- as compile-time contracts.
//   - select: racing channels, non-blocking default, timeouts, and the
//     nil-channel trick for disabling a case.
//   - What a deadlock looks like and how the runtime reports it.
//
// Why
//
//	"Do not communicate by sharing memory; share memory by communicating."
//	Channels carry both data and synchronisation in one primitive: a send
//	happens before its receive, so ownership of a value transfers cleanly
//	from one goroutine to the next.
package channels
