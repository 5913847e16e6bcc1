package commands

import (
	"context"
)

// StartAssignmentCommandHandler performs the scheduled→active transition.
//
// The assignment status and both resource statuses move in lock-step inside
// one transaction. Resource rows are re-read under a row-level write lock, so
// two start commands racing for the same vehicle serialize: the first wins,
// the second observes the claimed status and fails with ResourceUnavailable.
//
// Example:
//
//	cmd, _ := NewStartAssignmentCommand(assignmentID)
//	handler := NewStartAssignmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("start refused: %v", err)
//	}
type StartAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartAssignmentCommandHandler creates a handler for start operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewStartAssignmentCommandHandler(uowFactory UoWFactory) StartAssignmentCommandHandler {
	return StartAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
// Validates the transition, claims the vehicle (in_use) and the driver
// (en_route) and activates the assignment, or fails without partial effect.
func (h StartAssignmentCommandHandler) Handle(ctx context.Context, cmd StartAssignmentCommand) error {
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

	if err = aggregate.Start(); err != nil {
		return err
	}

	// Vehicle before driver, always, so concurrent transitions touching the
	// same pair cannot deadlock on lock ordering.
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

	if err = v.MarkInUse(); err != nil {
		return err
	}

	if err = d.MarkEnRoute(); err != nil {
		return err
	}

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
