package commands

import (
	"errors"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to change a registered driver.
// Nil fields are left untouched; a nil qualifiedTypes slice means unchanged.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	status         *driver.Status
	active         *bool
	phone          *string
	email          *string
	position       *kernel.GeoPoint
	qualifiedTypes []vehicle.Type

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to mutate a driver's state.
// Validates the driver id, the status enum when supplied, and each
// qualified vehicle type when the set is replaced.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	status *driver.Status,
	active *bool,
	phone *string,
	email *string,
	position *kernel.GeoPoint,
	qualifiedTypes []vehicle.Type,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		active:   active,
		phone:    phone,
		email:    email,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setStatus(status),
		cmd.setQualifiedTypes(qualifiedTypes),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to change.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the new availability status, or nil when unchanged.
func (c UpdateDriverCommand) Status() *driver.Status {
	return c.status
}

// Active returns the new active flag, or nil when unchanged.
func (c UpdateDriverCommand) Active() *bool {
	return c.active
}

// Phone returns the new contact phone, or nil when unchanged.
func (c UpdateDriverCommand) Phone() *string {
	return c.phone
}

// Email returns the new contact email, or nil when unchanged.
func (c UpdateDriverCommand) Email() *string {
	return c.email
}

// Position returns the new last-known position, or nil when unchanged.
func (c UpdateDriverCommand) Position() *kernel.GeoPoint {
	return c.position
}

// QualifiedTypes returns the replacement qualification set, or nil when unchanged.
func (c UpdateDriverCommand) QualifiedTypes() []vehicle.Type {
	return c.qualifiedTypes
}

func (c *UpdateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverCommand) setStatus(status *driver.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateDriverCommand) setQualifiedTypes(types []vehicle.Type) error {
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	c.qualifiedTypes = types
	return nil
}
