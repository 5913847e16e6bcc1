package commands

import (
	"context"

	"fleet/internal/core/domain/model/assignment"
)

// CancelAssignmentCommandHandler cancels a non-terminal assignment.
// Any resource still held by the assignment is released back to "available"
// synchronously within the same transaction.
type CancelAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelAssignmentCommandHandler creates a handler for cancel operations.
func NewCancelAssignmentCommandHandler(uowFactory UoWFactory) CancelAssignmentCommandHandler {
	return CancelAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
// Cancelling a terminal assignment fails with InvalidTransition.
func (h CancelAssignmentCommandHandler) Handle(ctx context.Context, cmd CancelAssignmentCommand) error {
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

	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	// Resources are only claimed once the assignment is scheduled or active;
	// pending and auto-assignment-failed records hold nothing.
	heldResources := aggregate.Status() == assignment.StatusScheduled ||
		aggregate.Status() == assignment.StatusActive

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if heldResources {
		if err = h.releaseResources(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelAssignmentCommandHandler) releaseResources(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.Assignment,
) error {
	if aggregate.VehicleID() != nil {
		vehicleRepo := uow.VehicleRepository()

		v, err := vehicleRepo.GetForUpdate(ctx, *aggregate.VehicleID())
		if err != nil {
			return err
		}

		v.Release()
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	if aggregate.DriverID() != nil {
		driverRepo := uow.DriverRepository()

		d, err := driverRepo.GetForUpdate(ctx, *aggregate.DriverID())
		if err != nil {
			return err
		}

		d.Release()
		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return nil
}
