// Package golessons is an annotated Go curriculum: 38 self-contained
// lessons, one package each, every one runnable on its own.
//
// 🚀 What is golessons?
//
//	A course you read AND run. Each lesson package prints a guided
//	demonstration of one topic and exports the helpers it teaches:
//		• Part I:   the language (types, control flow, structs,
//		  interfaces, generics, errors)
//		• Part II:  concurrency (goroutines, channels, worker pools,
//		  futures)
//		• Part III: the standard library (files, io, JSON, regexp,
//		  reflection, sockets, HTTP, SQL)
//		• Part IV:  engineering (logging, config, validation, testing,
//		  Kafka, patterns, data structures, graphs)
//
// ✨ Why this shape?
//
//   - Deterministic output: every lesson prints the same transcript
//     every run, so Example tests verify the teaching itself
//   - Independent lessons: no lesson imports another; read them in
//     any order
//   - Real libraries: lessons use the ecosystem (testify, zerolog,
//     sqlite, kafka-go, validator, HCL) the way production code does
//
// Everything hangs off three directories:
//
//	curriculum/  Lesson descriptor, Registry, and the Notebook writer
//	lessons/     the 38 lesson packages, hello through graphs
//	cmd/         the golessons runner binary
//
// Quick start:
//
//	go run ./cmd/golessons -list
//	go run ./cmd/golessons pointers
//	go run ./cmd/golessons -part concurrency
//
// Dive into README.md for the full course index.
//
//	go get github.com/katalvlaran/golessons
package golessons
