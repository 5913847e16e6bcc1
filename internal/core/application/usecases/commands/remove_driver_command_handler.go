package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/pkg/errs"
)

// RemoveDriverCommandHandler deletes a driver while preserving everything
// that references them: assignment links are detached and vehicles lose
// their preferred-driver link. A driver serving an active assignment
// cannot be removed.
type RemoveDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver deletion operations.
func NewRemoveDriverCommandHandler(uowFactory UoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver deletion command.
// Detaches the driver from all non-terminal assignments, clears
// preferred-driver links on vehicles and deletes the record, all in one
// transaction.
func (h RemoveDriverCommandHandler) Handle(ctx context.Context, cmd RemoveDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	holders, err := assignmentRepo.GetAllByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	for _, holder := range holders {
		if holder.Status() == assignment.StatusActive {
			return errs.NewResourceUnavailableErrorWithCause(
				"driver", aggregate.LicenseNumber(), aggregate.Status().String(),
				errors.New("driver is serving an active assignment"),
			)
		}

		holder.DetachDriver()
		if err = assignmentRepo.Update(ctx, holder); err != nil {
			return err
		}
	}

	preferring, err := vehicleRepo.GetAllByPreferredDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	for _, v := range preferring {
		v.ClearPreferredDriver()
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	if err = driverRepo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
