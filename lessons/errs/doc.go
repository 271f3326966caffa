// Package errs is lesson 13: errors as values.
//
// What
//
//   - error is a one-method interface; anything with Error() string counts.
//   - Sentinel errors, %w wrapping, and matching with errors.Is.
//   - Custom error types carrying data, extracted with errors.As.
//   - Aggregation of independent failures: stdlib errors.Join,
//     go.uber.org/multierr, and hashicorp/go-multierror.
//   - panic and recover, and why they stay at the edges.
//
// Why
//
//	Errors are ordinary return values, so the whole control flow stays
//	visible at the call site. The wrapping verbs added in Go 1.13 give the
//	chain structure: Is asks "is this failure X", As asks "is there an X
//	in here I can look at".
//
// Errors
//
//   - ErrNotFound: a lookup missed; match with errors.Is.
//   - ParseError: a line failed to parse; extract with errors.As.
package errs
