// Package regex is lesson 23: regular expressions with package regexp.
//
// What
//
//   - Compile once (MustCompile at package level), match many times.
//   - Find vs FindAll, submatches, and named capture groups.
//   - ReplaceAllString with $1 references and ReplaceAllStringFunc.
//   - Split, QuoteMeta, and the RE2 guarantees.
//
// Why
//
//	Go's engine is RE2: no backtracking, no lookaround, but guaranteed
//	linear-time matching. A hostile input cannot pin your CPU the way
//	catastrophic backtracking does elsewhere, which is exactly the
//	trade-off you want in a server.
package regex
