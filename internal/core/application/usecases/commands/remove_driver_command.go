package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents a request to delete a driver.
// Referencing assignments are detached and preferred-driver links on
// vehicles are cleared, never cascaded.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to delete a driver.
func NewRemoveDriverCommand(driverID kernel.UUID) (RemoveDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return RemoveDriverCommand{}, err
	}

	return RemoveDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to delete.
func (c RemoveDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
