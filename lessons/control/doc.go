// Package control is lesson 05: if, switch, and the one true loop.
//
// Go keeps exactly one loop keyword. for covers the C-style counter loop,
// the while loop, the infinite loop, and (with range) iteration over
// collections. switch is the surprise: cases break by default, can carry
// no condition at all, and can switch on types (previewed here, explored
// in the interfaces lesson). if and switch both accept an init statement,
// which keeps error-scoped variables tight.
package control
