// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated identity value object wrapping github.com/google/uuid
//   - Money: immutable monetary amount in minor currency units
//
// Value objects in this package are immutable, compared by value, and must be
// created through their constructor functions. Zero values fail validation.
package kernel
