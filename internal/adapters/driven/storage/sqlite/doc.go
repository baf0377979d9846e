// Package sqlite provides the SQLite-based implementation of the bakery store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements both store interfaces
// through a single database handle:
//
//   - BakeryStore: Bakery persistence
//   - BakedGoodStore: Baked good persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory and applied when the store is opened.
//
// # Integrity
//
// Foreign keys are enabled on every pooled connection. UNIQUE and FOREIGN KEY
// violations are reported as domain.ErrAlreadyExists and domain.ErrInvalidReference.
//
// # Data Location
//
// By default, the database is stored at ~/.bakehouse/data/bakeries.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. Write transactions begin
// IMMEDIATE so that concurrent read-then-write requests serialise on the
// database lock instead of failing on upgrade.
package sqlite
