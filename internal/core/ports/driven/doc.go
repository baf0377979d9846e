// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - BakeryStore: Bakery persistence
//   - BakedGoodStore: Baked good persistence, including the bakery foreign key
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - HealthChecker: Stores that implement it are pinged by the health endpoint.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
