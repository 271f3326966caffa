// Package variables is lesson 02: declarations, zero values, and constants.
//
// What
//
//   - var declarations vs the := short form, and when each is allowed.
//   - Zero values: every Go variable is usable the moment it exists.
//   - Constants: typed, untyped, and the arbitrary-precision constant space.
//   - Shadowing: the classic := inside a block pitfall.
//
// Why
//
//	Java separates declaration from definite assignment and makes you fear
//	null. Go initializes everything to a well-defined zero value, which is
//	why idioms like "var buf strings.Builder" work with no constructor.
package variables
