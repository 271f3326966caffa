// Package logging is lesson 30: from log.Println to structured logging.
//
// What
//
//   - the stdlib log package: prefixes, flags, and its limits.
//   - log/slog: levels, attributes, groups, handlers, LogValuer.
//   - rs/zerolog: allocation-free JSON events and child loggers.
//   - go-logr/logr with the zerologr adapter: one facade, any backend.
//
// Demonstration loggers are built without timestamps so the transcript
// is reproducible; production loggers keep them, obviously.
package logging
