// Package sqlite provides a SQLite-backed DocumentStore holding the
// snapshot of the last catalog reload.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory and embedded at compile time. Applied versions are
// recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.snipsurf/data/snapshot.db
//
// # Thread Safety
//
// All operations are thread-safe. ReplaceAll swaps the snapshot inside a
// single transaction, so readers see either the old or the new snapshot.
package sqlite
