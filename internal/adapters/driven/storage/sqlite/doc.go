// Package sqlite provides the SQLite-backed result store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
//   - results: sequence_id, description, percent_id, e_value (append-only)
//   - searches: one provenance row per searched query
//
// # Data Location
//
// One database per input file, at {output-folder}/{input basename}_blast_results.db.
//
// # Connection Lifetime
//
// No connection outlives a call. Every Append opens the file, writes inside
// a single transaction and closes it again.
package sqlite
