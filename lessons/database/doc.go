// Package database is lesson 27: relational storage with database/sql.
//
// What
//
//   - sql.Open, driver registration by blank import, Ping.
//   - Exec/LastInsertId/RowsAffected for writes.
//   - QueryRow + Scan for one row, Query + Next for many.
//   - sql.ErrNoRows and turning it into a domain sentinel.
//   - Transactions: Begin, Commit, and rollback on failure.
//
// Why
//
// database/sql is a driver-agnostic pool; the same code talks to SQLite
// here and to Postgres in production by swapping the driver import and
// DSN. The lesson runs entirely against an in-memory SQLite database.
package database
