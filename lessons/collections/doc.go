// Package collections is lesson 11: arrays, slices, and maps.
//
// What
//
//   - Arrays are values with a fixed length baked into the type.
//   - Slices are {pointer, len, cap} views over a backing array; append
//     grows by reallocating, which quietly breaks aliasing.
//   - Maps are hash tables with comma-ok lookup and random iteration order.
//   - golang.org/x/exp/slices and /maps for the everyday operations the
//     language itself leaves out.
//
// Why
//
//	Nine out of ten Go bugs involving data start with someone holding a
//	slice view they thought was a copy, or ranging over a map expecting an
//	order. This lesson ends with helpers (Unique, WordCount, SortedKeys,
//	TopWords) that keep map-backed results deterministic.
package collections
