// Package contexts is lesson 14: context.Context.
//
// What
//
//   - Background and TODO, the two roots.
//   - WithCancel, WithTimeout, WithCancelCause, and how cancellation flows
//     parent to child, never back up.
//   - ctx.Done() in a select: the shape of every cancellable wait.
//   - WithValue for request-scoped metadata behind unexported key types.
//
// Why
//
//	Context is Go's answer to "how do I stop work I started". Every
//	blocking API in this course (servers, DB calls, Kafka, HTTP) takes a
//	ctx first, and the conventions here (first parameter, defer cancel,
//	values only for metadata) are what make those APIs composable.
package contexts
