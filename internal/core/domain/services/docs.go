// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pricing engine. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteResolver: A domain service that evaluates a delivery type's rule set
//     against order inputs and computes the final price
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
