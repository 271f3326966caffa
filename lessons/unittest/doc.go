// Package unittest is lesson 33: testing in Go.
//
// The lesson is deliberately self-referential: unittest_test.go in this
// directory demonstrates every technique the transcript talks about
// (table tests, subtests, t.Helper, testify, parallel tests, a
// benchmark and a fuzz target) against the small functions defined here.
package unittest
