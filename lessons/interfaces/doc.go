// Package interfaces is lesson 09: interfaces as implicit contracts.
//
// What
//
//   - Implicit satisfaction: a type implements an interface by having the
//     methods, with no declaration linking the two.
//   - Interface values as (dynamic type, value) pairs.
//   - Type assertions with comma-ok, and type switches.
//   - fmt.Stringer, the interface the fmt package checks for you.
//   - The typed-nil trap: an interface holding a nil pointer is not nil.
//
// Why
//
//	Interfaces are Go's whole polymorphism story. Because satisfaction is
//	implicit, the consumer declares the interface it needs, usually one or
//	two methods, and any producer qualifies retroactively. The standard
//	library's io.Reader and io.Writer are the canonical examples.
package interfaces
