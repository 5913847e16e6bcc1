package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrStartAssignmentCommandIsNotConstructed = errors.New(
	"StartAssignmentCommand must be created via NewStartAssignmentCommand constructor",
)

// StartAssignmentCommand triggers the scheduled→active transition,
// claiming the attached vehicle and driver.
type StartAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartAssignmentCommand creates a command to start a scheduled assignment.
func NewStartAssignmentCommand(assignmentID kernel.UUID) (StartAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return StartAssignmentCommand{}, err
	}

	return StartAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to start.
func (c StartAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
