// Package validation is lesson 32: declarative input validation.
//
// What
//
//   - go-playground/validator tags: required, min/max, email, oneof, dive.
//   - translating ValidationErrors into messages a human can act on.
//   - registering custom field rules and struct-level rules.
//   - one-off checks on bare values with Var.
//
// The rules live on the struct they guard, so the type declaration reads
// as its own contract.
package validation
