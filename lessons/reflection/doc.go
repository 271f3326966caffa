// Package reflection is lesson 24: the reflect package.
//
// What
//
//   - The laws of reflection: interface value to reflect object and
//     back, and why only addressable values can be set.
//   - Type vs Kind, walking struct fields, reading custom tags.
//   - Setting fields through a pointer (SetField).
//   - Calling methods by name (CallByName).
//
// Why
//
//	Reflection is how json, validator, and every ORM see your structs
//	without knowing them at compile time. Application code should almost
//	never need it; this lesson exists so that when you read those
//	libraries, the machinery is familiar rather than magic.
//
// Errors
//
//	SetField reports ErrNotStructPointer, ErrUnknownField, ErrUnexported,
//	or ErrUnassignable, so callers can tell misuse apart from typos.
package reflection
