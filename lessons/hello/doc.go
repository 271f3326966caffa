// Package hello is lesson 01: program anatomy and printing with fmt.
//
// The smallest useful Go program is a package clause, an import, and a main
// function. This lesson walks the fmt printing family (Print, Println,
// Printf, Sprintf, Fprintf) and the formatting verbs you will meet in every
// later lesson: %v, %+v, %T, %q, %d, %f, and width/precision modifiers.
//
// Run it with:
//
//	golessons run hello
package hello
