// Package vehicle provides the Vehicle aggregate root and its closed status
// and type enumerations.
//
// A vehicle's availability status and any assignment referencing the vehicle
// are two separately stored facts that must move in lock-step. This package
// only supplies the per-aggregate pieces of that contract (claim, release,
// capacity checks); the assignment lifecycle command handlers are the single
// writer that changes both records together.
package vehicle
