// Package structs is lesson 08: struct types, methods, and embedding.
//
// What
//
//   - Struct literals, field access, and why keyed literals age better.
//   - Methods: functions with a receiver, value or pointer.
//   - The receiver rule: pointer receivers mutate, value receivers see copies.
//   - Embedding: composition with field and method promotion, not inheritance.
//   - Anonymous structs and struct comparison.
//
// The running cast is a Person and a BankAccount, rebuilt fresh for this
// lesson (other lessons define their own unrelated Person types on purpose;
// disposable example types beat a shared model pulled between chapters).
package structs
