package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrMatchAssignmentCommandIsNotConstructed = errors.New(
	"MatchAssignmentCommand must be created via NewMatchAssignmentCommand constructor",
)

// MatchAssignmentCommand triggers automatic resource matching.
// Without a target it picks the oldest record awaiting matching; with a
// target it retries that specific assignment (for example after a previous
// auto-assignment failure).
//
// Example:
//
//	cmd := NewMatchAssignmentCommand()
//	handler := NewMatchAssignmentCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingAssignmentFound):
//	    log.Println("Nothing to match")
//	case errors.Is(err, services.ErrNoMatchFound):
//	    log.Println("No compatible pair, assignment flagged for manual intervention")
//	case err != nil:
//	    log.Printf("Matching failed: %v", err)
//	}
type MatchAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMatchAssignmentCommand creates a command to match the oldest assignment
// awaiting automatic resource selection.
func NewMatchAssignmentCommand() MatchAssignmentCommand {
	return MatchAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// NewMatchAssignmentCommandForID creates a command to match one specific assignment.
func NewMatchAssignmentCommandForID(assignmentID kernel.UUID) (MatchAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return MatchAssignmentCommand{}, err
	}

	return MatchAssignmentCommand{
		assignmentID: &assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrMatchAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the targeted assignment, or nil for the oldest pending one.
func (c MatchAssignmentCommand) AssignmentID() *kernel.UUID {
	return c.assignmentID
}
