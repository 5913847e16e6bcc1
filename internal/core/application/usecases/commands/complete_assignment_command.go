package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCompleteAssignmentCommandIsNotConstructed = errors.New(
	"CompleteAssignmentCommand must be created via NewCompleteAssignmentCommand constructor",
)

// CompleteAssignmentCommand triggers the active→completed transition,
// releasing the attached vehicle and driver.
type CompleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAssignmentCommand creates a command to complete an active assignment.
func NewCompleteAssignmentCommand(assignmentID kernel.UUID) (CompleteAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return CompleteAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to complete.
func (c CompleteAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
