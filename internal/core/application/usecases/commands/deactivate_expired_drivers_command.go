package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrDeactivateExpiredDriversCommandIsNotConstructed = errors.New(
	"DeactivateExpiredDriversCommand must be created via NewDeactivateExpiredDriversCommand constructor",
)

// DeactivateExpiredDriversCommand triggers a sweep that deactivates every
// driver whose license has expired, removing them from the matching pool.
type DeactivateExpiredDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewDeactivateExpiredDriversCommand creates a new license expiry sweep command.
func NewDeactivateExpiredDriversCommand() DeactivateExpiredDriversCommand {
	return DeactivateExpiredDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DeactivateExpiredDriversCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateExpiredDriversCommandIsNotConstructed)
}
