// Package memory is lesson 28: allocation, escape analysis and the GC.
//
// Absolute byte counts vary run to run, so the demonstration prints
// trends (grew, increased, reused) next to the raw numbers instead of
// promising exact figures.
package memory
