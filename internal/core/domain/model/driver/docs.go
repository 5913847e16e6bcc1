// Package driver provides the Driver aggregate root and its availability
// status enumeration.
//
// Drivers carry an active flag separate from their availability status: a
// deactivated driver keeps whatever status it had but is never selected for
// new work, neither by the matching engine nor by a manual start command.
package driver
