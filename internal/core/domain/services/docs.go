// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fleet system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Matcher: A domain service for finding and scheduling a compatible
//     vehicle and driver pair for a transport assignment
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
