package commands

import (
	"context"
	"time"
)

// CompleteAssignmentCommandHandler performs the active→completed transition.
// Both resources return to "available" and the actual end timestamp is
// recorded, all in one transaction.
type CompleteAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteAssignmentCommandHandler creates a handler for complete operations.
func NewCompleteAssignmentCommandHandler(uowFactory UoWFactory) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete command.
// Completing an already completed assignment fails with InvalidTransition
// and changes nothing.
func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) error {
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

	if err = aggregate.Complete(time.Now()); err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, *aggregate.VehicleID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.GetForUpdate(ctx, *aggregate.DriverID())
	if err != nil {
		return err
	}

	v.Release()
	d.Release()

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
