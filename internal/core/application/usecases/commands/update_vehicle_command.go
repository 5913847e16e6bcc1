package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to change a registered vehicle.
// Nil fields are left untouched. Clearing the preferred driver is an explicit
// flag so it can be distinguished from "no change".
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID            kernel.UUID
	status               *vehicle.Status
	position             *kernel.GeoPoint
	features             *string
	preferredDriverID    *kernel.UUID
	clearPreferredDriver bool

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to mutate a vehicle's operational state.
// Validates the vehicle id, the status enum when supplied, and the preferred
// driver reference when supplied.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID,
	status *vehicle.Status,
	position *kernel.GeoPoint,
	features *string,
	preferredDriverID *kernel.UUID,
	clearPreferredDriver bool,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		position:             position,
		features:             features,
		clearPreferredDriver: clearPreferredDriver,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setStatus(status),
		cmd.setPreferredDriverID(preferredDriverID),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to change.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Status returns the new availability status, or nil when unchanged.
func (c UpdateVehicleCommand) Status() *vehicle.Status {
	return c.status
}

// Position returns the new last-known position, or nil when unchanged.
func (c UpdateVehicleCommand) Position() *kernel.GeoPoint {
	return c.position
}

// Features returns the new feature text, or nil when unchanged.
func (c UpdateVehicleCommand) Features() *string {
	return c.features
}

// PreferredDriverID returns the new preferred driver reference, or nil when unchanged.
func (c UpdateVehicleCommand) PreferredDriverID() *kernel.UUID {
	return c.preferredDriverID
}

// ClearPreferredDriver reports whether the preferred driver link should be removed.
func (c UpdateVehicleCommand) ClearPreferredDriver() bool {
	return c.clearPreferredDriver
}

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setStatus(status *vehicle.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateVehicleCommand) setPreferredDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.preferredDriverID = driverID
	return nil
}
