package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

var ErrNoPendingAssignmentFound = errors.New("no assignment awaiting automatic matching")

// MatchAssignmentCommandHandler orchestrates the automatic matching process.
// Runs the Matcher over the currently available resource pool and either
// schedules the assignment (reserving the chosen vehicle) or records the
// auto-assignment failure, in one transaction.
type MatchAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewMatchAssignmentCommandHandler creates a handler for matching operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewMatchAssignmentCommandHandler(uowFactory UoWFactory) MatchAssignmentCommandHandler {
	return MatchAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the matching command.
// Returns ErrNoPendingAssignmentFound when the sweep finds nothing to do and
// services.ErrNoMatchFound when the candidate pool is exhausted; in the
// latter case the failed state has already been committed.
func (h MatchAssignmentCommandHandler) Handle(ctx context.Context, cmd MatchAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := h.loadTarget(ctx, assignmentRepo, cmd)
	if err != nil {
		return err
	}

	err = matchAndClaim(ctx, uow, aggregate)
	if errors.Is(err, services.ErrNoMatchFound) {
		return h.recordFailure(ctx, uow, assignmentRepo, aggregate, err)
	}
	if err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h MatchAssignmentCommandHandler) loadTarget(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	cmd MatchAssignmentCommand,
) (*assignment.Assignment, error) {
	if cmd.AssignmentID() != nil {
		return assignmentRepo.Get(ctx, *cmd.AssignmentID())
	}

	aggregate, err := assignmentRepo.GetFirstPendingAutoAssignment(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingAssignmentFound
	}
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

// recordFailure commits the pending→auto_assignment_failed transition and
// still reports ErrNoMatchFound to the caller. A retry on an assignment
// already in the failed state is left as is.
func (h MatchAssignmentCommandHandler) recordFailure(
	ctx context.Context,
	uow UoW,
	assignmentRepo ports.AssignmentRepository,
	aggregate *assignment.Assignment,
	noMatch error,
) error {
	if aggregate.Status() == assignment.StatusPendingAutoAssignment {
		if err := aggregate.FailAutoAssignment(); err != nil {
			return err
		}

		if err := assignmentRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if err := uow.Commit(ctx); err != nil {
			return err
		}
	}

	return noMatch
}
