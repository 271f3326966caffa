// Package functions is lesson 06: functions as values, multiple returns,
// variadics, closures, and defer.
//
// What
//
//   - Multiple return values and the (result, error) convention.
//   - Variadic parameters and slice splatting with xs...
//   - Closures: functions that capture variables, not values.
//   - defer: LIFO cleanup that runs on every exit path.
//   - Recursion, because no loop teaches a call stack.
//
// Why
//
//	Go has no exceptions, overloading, or default arguments. What it has is
//	functions as first-class values plus multiple returns, and nearly every
//	API idiom in this course (options, handlers, hooks) is built from that.
package functions
