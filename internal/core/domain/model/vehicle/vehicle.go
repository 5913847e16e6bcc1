package vehicle

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when creating a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrMakeIsRequired is returned when creating a vehicle without a make.
	ErrMakeIsRequired = errs.NewValueIsRequiredError("make")
	// ErrModelIsRequired is returned when creating a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is the aggregate root for a fleet vehicle. It owns the vehicle's
// identity (globally unique plate), capacity attributes, last-known position
// and availability status, plus an optional weak link to a preferred driver.
//
// Invariants:
//   - Plate, make and model are non-empty
//   - Passenger capacity is never negative
//   - Cargo capacity, when present, is positive
//   - Status is always a member of the closed enumeration
//   - Can only be created through NewVehicle or RestoreVehicle
//
// The preferred driver link is an identifier only: the vehicle does not own
// the driver's lifecycle, and deleting the driver clears the link.
type Vehicle struct {
	id                kernel.UUID
	plate             string
	make              string
	model             string
	vehicleType       Type
	passengerCapacity int
	cargoCapacityKG   *int
	features          string
	position          *kernel.GeoPoint
	status            Status
	preferredDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewVehicle creates a vehicle in the available status. Plate, make and model
// are required, passenger capacity must be non-negative and cargo capacity,
// when supplied, must be positive.
func NewVehicle(
	id kernel.UUID,
	plate string,
	vehicleMake string,
	model string,
	vehicleType Type,
	passengerCapacity int,
	cargoCapacityKG *int,
	features string,
) (*Vehicle, error) {
	v := &Vehicle{
		status:   StatusAvailable,
		features: features,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setMake(vehicleMake),
		v.setModel(model),
		v.setType(vehicleType),
		v.setPassengerCapacity(passengerCapacity),
		v.setCargoCapacityKG(cargoCapacityKG),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistent storage, including
// its status, position and preferred driver link. The restored aggregate
// behaves identically to one created through normal domain operations.
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	vehicleMake string,
	model string,
	vehicleType Type,
	passengerCapacity int,
	cargoCapacityKG *int,
	features string,
	position *kernel.GeoPoint,
	status Status,
	preferredDriverID *kernel.UUID,
) (*Vehicle, error) {
	v, err := NewVehicle(id, plate, vehicleMake, model, vehicleType, passengerCapacity, cargoCapacityKG, features)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	v.status = status

	if position != nil {
		if err = position.Validate(); err != nil {
			return nil, err
		}
		v.position = position
	}

	if preferredDriverID != nil {
		if err = preferredDriverID.Validate(); err != nil {
			return nil, err
		}
		v.preferredDriverID = preferredDriverID
	}

	return v, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the globally unique registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Make returns the manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Type returns the vehicle's type.
func (v *Vehicle) Type() Type {
	return v.vehicleType
}

// PassengerCapacity returns the maximum passenger count, excluding the driver.
func (v *Vehicle) PassengerCapacity() int {
	return v.passengerCapacity
}

// CargoCapacityKG returns the cargo capacity in kilograms, or nil when the
// vehicle carries no cargo.
func (v *Vehicle) CargoCapacityKG() *int {
	return v.cargoCapacityKG
}

// Features returns the free-text special feature description.
func (v *Vehicle) Features() string {
	return v.features
}

// Position returns the last-known position, or nil when never reported.
func (v *Vehicle) Position() *kernel.GeoPoint {
	return v.position
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// PreferredDriverID returns the preferred driver link, or nil.
func (v *Vehicle) PreferredDriverID() *kernel.UUID {
	return v.preferredDriverID
}

// SetFeatures replaces the free-text special feature description.
func (v *Vehicle) SetFeatures(features string) {
	v.features = features
}

// SetPosition records a newly reported position.
func (v *Vehicle) SetPosition(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v.position = &p
	return nil
}

// SetPreferredDriver links a preferred driver to the vehicle.
func (v *Vehicle) SetPreferredDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	v.preferredDriverID = &driverID
	return nil
}

// ClearPreferredDriver removes the preferred driver link. Called when the
// referenced driver is deleted.
func (v *Vehicle) ClearPreferredDriver() {
	v.preferredDriverID = nil
}

// SetStatus overrides the availability status. This is the administrative
// entry point (for example moving a vehicle into maintenance); lifecycle
// transitions use Reserve, MarkInUse and Release instead.
func (v *Vehicle) SetStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	v.status = s
	return nil
}

// Reserve holds the vehicle for a scheduled assignment. Fails with
// ResourceUnavailable when the vehicle cannot be claimed.
func (v *Vehicle) Reserve() error {
	if !v.status.CanBeClaimed() {
		return errs.NewResourceUnavailableError("vehicle", v.plate, v.status.String())
	}
	v.status = StatusReserved
	return nil
}

// MarkInUse puts the vehicle on the road for an active assignment. Fails with
// ResourceUnavailable when the vehicle cannot be claimed.
func (v *Vehicle) MarkInUse() error {
	if !v.status.CanBeClaimed() {
		return errs.NewResourceUnavailableError("vehicle", v.plate, v.status.String())
	}
	v.status = StatusInUse
	return nil
}

// Release returns a claimed vehicle to the available status. Releasing a
// vehicle that holds no claim (for example one in maintenance) is a no-op,
// so a cancelled assignment never resurrects an out-of-service vehicle.
func (v *Vehicle) Release() {
	if v.status == StatusInUse || v.status == StatusReserved {
		v.status = StatusAvailable
	}
}

// CanCarry reports whether the vehicle satisfies the given capacity demand.
// A cargo demand can only be satisfied by a vehicle with a cargo capacity.
func (v *Vehicle) CanCarry(passengers int, cargoKG *int) bool {
	if v.passengerCapacity < passengers {
		return false
	}
	if cargoKG != nil && (v.cargoCapacityKG == nil || *v.cargoCapacityKG < *cargoKG) {
		return false
	}
	return true
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return ErrMakeIsRequired
	}
	v.make = vehicleMake
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	v.model = model
	return nil
}

func (v *Vehicle) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	v.vehicleType = t
	return nil
}

func (v *Vehicle) setPassengerCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("passenger capacity",
			fmt.Errorf("%d is negative", capacity))
	}
	v.passengerCapacity = capacity
	return nil
}

func (v *Vehicle) setCargoCapacityKG(capacity *int) error {
	if capacity != nil && *capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargo capacity",
			fmt.Errorf("%d is not greater than 0", *capacity))
	}
	v.cargoCapacityKG = capacity
	return nil
}
