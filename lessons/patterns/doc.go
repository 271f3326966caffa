// Package patterns is lesson 36: classic design patterns the way Go
// actually expresses them.
//
// Six patterns, each reduced to its Go-native form: functional options
// instead of telescoping constructors, a fluent builder that validates
// at Build, a sync.Once singleton, an observer bus, strategies as plain
// function values, and decorators as middleware chains. The lesson's
// point is that half the Gang of Four dissolves into functions and
// interfaces once a language has first-class closures.
package patterns
