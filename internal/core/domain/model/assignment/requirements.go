package assignment

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// ErrRequirementsAreNotConstructed is returned when validating a Requirements
// value that was not created via NewRequirements.
var ErrRequirementsAreNotConstructed = errors.New("Requirements must be created via NewRequirements constructor")

// Requirements is a value object describing what an assignment demands from
// its resources: how many passengers, how much cargo, an optional preferred
// vehicle type and free-text special needs. The matching engine evaluates
// candidate vehicles against these fields.
type Requirements struct {
	passengers    int
	cargoKG       *int
	preferredType *vehicle.Type
	special       string

	guard guard.ConstructorGuard
}

// NewRequirements creates a Requirements value. At least one passenger is
// required; cargo weight, when supplied, must be positive; the preferred type,
// when supplied, must be a member of the vehicle type enumeration.
func NewRequirements(passengers int, cargoKG *int, preferredType *vehicle.Type, special string) (Requirements, error) {
	if passengers < 1 {
		return Requirements{}, errs.NewValueIsInvalidErrorWithCause("req_passengers",
			fmt.Errorf("%d is not greater than 0", passengers))
	}
	if cargoKG != nil && *cargoKG <= 0 {
		return Requirements{}, errs.NewValueIsInvalidErrorWithCause("req_cargo_kg",
			fmt.Errorf("%d is not greater than 0", *cargoKG))
	}
	if preferredType != nil {
		if err := preferredType.Validate(); err != nil {
			return Requirements{}, err
		}
	}

	return Requirements{
		passengers:    passengers,
		cargoKG:       cargoKG,
		preferredType: preferredType,
		special:       special,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Passengers returns the requested passenger count.
func (r Requirements) Passengers() int {
	return r.passengers
}

// CargoKG returns the requested cargo weight in kilograms, or nil when the
// assignment carries no cargo.
func (r Requirements) CargoKG() *int {
	return r.cargoKG
}

// PreferredType returns the preferred vehicle type, or nil when any type will do.
func (r Requirements) PreferredType() *vehicle.Type {
	return r.preferredType
}

// Special returns the free-text special requirements.
func (r Requirements) Special() string {
	return r.special
}

// HasCargo reports whether the assignment carries a cargo demand.
func (r Requirements) HasCargo() bool {
	return r.cargoKG != nil
}

// Validate returns ErrRequirementsAreNotConstructed for zero values.
func (r Requirements) Validate() error {
	return r.guard.Validate(ErrRequirementsAreNotConstructed)
}
