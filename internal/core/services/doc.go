// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services hold no state between calls; every operation is a single
// read or write against a store.
package services
