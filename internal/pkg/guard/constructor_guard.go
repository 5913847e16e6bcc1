// Package guard provides a defensive construction pattern for domain objects.
// Value objects, entities and commands embed a ConstructorGuard so that
// zero-value instances (which bypass constructor validation) are detectable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// was supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. A zero-value guard fails validation, which lets
// domain objects reject direct struct initialization and preserve their
// invariants.
//
// Example:
//
//	type Requirements struct {
//	    passengers int
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewRequirements(passengers int) (Requirements, error) {
//	    if passengers < 1 {
//	        return Requirements{}, errors.New("passengers must be at least 1")
//	    }
//	    return Requirements{passengers: passengers, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Requirements) Validate() error {
//	    return r.guard.Validate(ErrRequirementsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
