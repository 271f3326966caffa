// Package generics is lesson 12: type parameters.
//
// What
//
//   - Declaring functions and types with [T any] parameter lists.
//   - Constraints: any, comparable, unions of types, and the named sets in
//     golang.org/x/exp/constraints.
//   - Type inference, and when you still spell the instantiation out.
//   - The workhorses every codebase reinvents: Map, Filter, Reduce, Sum,
//     Max, a Pair, and a Set.
//
// Why
//
//	Before Go 1.18 the choice was copy-paste per type or interface{} plus
//	runtime assertions. Type parameters move that checking to compile time.
//	The flip side: reach for them for containers and algorithms, not as a
//	default. Most Go code still wants interfaces.
package generics
