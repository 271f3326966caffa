// Package text is lesson 04: strings, bytes, runes, and the strings package.
//
// A Go string is an immutable slice of bytes that usually, but not
// necessarily, holds UTF-8. Indexing yields bytes; ranging yields runes
// (Unicode code points). Most string bugs are one of those two facts in
// disguise, so the lesson leans on a multi-byte word until the difference
// sticks. Closes with the strings package greatest hits and why
// strings.Builder beats += in loops.
package text
