package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCancelAssignmentCommandIsNotConstructed = errors.New(
	"CancelAssignmentCommand must be created via NewCancelAssignmentCommand constructor",
)

// CancelAssignmentCommand triggers cancellation of a non-terminal assignment.
// Cancellation is a first-class operator command, not a timeout.
type CancelAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAssignmentCommand creates a command to cancel an assignment.
func NewCancelAssignmentCommand(assignmentID kernel.UUID) (CancelAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CancelAssignmentCommand{}, err
	}

	return CancelAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to cancel.
func (c CancelAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
