package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/pkg/errs"
)

// RemoveVehicleCommandHandler deletes a vehicle while preserving the
// assignments that reference it: their vehicle link is detached, never
// cascaded. A vehicle serving an active assignment cannot be removed.
type RemoveVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveVehicleCommandHandler creates a handler for vehicle deletion operations.
func NewRemoveVehicleCommandHandler(uowFactory UoWFactory) RemoveVehicleCommandHandler {
	return RemoveVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle deletion command.
// Detaches the vehicle from all non-terminal assignments and deletes the
// record in a single transaction. Fails with ResourceUnavailable when an
// active assignment still holds the vehicle.
func (h RemoveVehicleCommandHandler) Handle(ctx context.Context, cmd RemoveVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	holders, err := assignmentRepo.GetAllByVehicle(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	for _, holder := range holders {
		if holder.Status() == assignment.StatusActive {
			return errs.NewResourceUnavailableErrorWithCause(
				"vehicle", aggregate.Plate(), aggregate.Status().String(),
				errors.New("vehicle is serving an active assignment"),
			)
		}

		holder.DetachVehicle()
		if err = assignmentRepo.Update(ctx, holder); err != nil {
			return err
		}
	}

	if err = vehicleRepo.Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
