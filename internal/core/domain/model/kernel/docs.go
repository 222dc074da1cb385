// Package kernel provides core domain primitives for the pricing engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A decimal-backed currency amount with round-half-up semantics
//   - Weight: A parcel weight in kilograms, strictly positive
//   - Distance: A trip distance in kilometers, non-negative
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent quote evaluation.
package kernel
