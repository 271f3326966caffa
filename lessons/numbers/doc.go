// Package numbers is lesson 03: numeric types, overflow, conversion, and money.
//
// What
//
//   - Sized integers (int8..int64, uint variants) and what int really is.
//   - Overflow: fixed-size integers wrap silently, by definition.
//   - Conversions are always explicit and always spelled T(v).
//   - Floating point: why 0.1 + 0.2 != 0.3, and what to do about money.
//   - strconv: the string<->number border crossing.
//
// Why
//
//	Go has no implicit numeric widening at all. An int32 plus an int64 is a
//	compile error until you convert one side. The upside is that every
//	precision loss in a Go program is visible at the call site.
//
// Money
//
//	Binary floats cannot represent most decimal fractions, so currency math
//	accumulates dust. The shopspring/decimal package stores exact decimal
//	values; SplitEvenly shows the classic "split a bill without losing a
//	cent" computation built on it.
package numbers
