// Package domain defines the core business entities for Bakehouse.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Bakery: A producer identified by a unique name
//   - BakedGood: A priced product owned by exactly one Bakery
//   - AppSettings: User-configurable server, storage, log and rate limit settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
