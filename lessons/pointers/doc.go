// Package pointers is lesson 07: addresses, dereference, and value semantics.
//
// Everything in Go is passed by value. A pointer is just a value that holds
// an address, so "pass by pointer" is still pass by value - the copied value
// happens to point at shared memory. There is no pointer arithmetic and no
// pointer/array duality; a nil pointer is an honest, checkable zero value.
// Returning a pointer to a local variable is safe: escape analysis moves it
// to the heap (the memory lesson revisits that).
package pointers
