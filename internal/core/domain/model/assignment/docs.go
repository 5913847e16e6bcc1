// Package assignment provides the Assignment aggregate root, its lifecycle
// status state machine and the Requirements value object.
//
// The package includes:
//   - Assignment: the aggregate root managing identity, the time window,
//     resource references and lifecycle transitions
//   - Status: the state machine enforcing valid lifecycle transitions
//   - Requirements: the capacity and preference demands a matched vehicle
//     must satisfy
//
// Key business rules:
//   - An assignment created without resources waits in
//     pending_auto_assignment for the matching engine
//   - Starting requires both resources attached; completing records the
//     actual end timestamp; cancelling is allowed from any non-terminal state
//   - completed and cancelled are terminal; auto_assignment_failed may be
//     retried
//   - The request timestamp is set once, at creation, from the server clock
//
// Resource availability side effects of each transition are not applied here:
// the lifecycle command handlers change the assignment and its resources
// together inside one transaction, so neither fact can drift from the other.
package assignment
