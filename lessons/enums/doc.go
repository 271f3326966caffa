// Package enums is lesson 10: enumerations the Go way.
//
// Go has no enum keyword. The idiom is a defined integer type plus a const
// block counted by iota, a String method so values print as names, and a
// Parse function for the reverse trip. Bit flags are the same idea with
// 1<<iota and the bitwise operators.
//
// Weekday is the classic day-of-week enum; Permission is the flag variant.
package enums
