package commands

import (
	"context"
)

// UpdateVehicleCommandHandler applies administrative changes to a vehicle.
// Setting a preferred driver verifies the referenced driver exists.
type UpdateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle update operations.
func NewUpdateVehicleCommandHandler(uowFactory UoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle update command.
// Loads the vehicle, applies the changed fields and persists it in one transaction.
func (h UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		if err = aggregate.SetStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if cmd.Position() != nil {
		if err = aggregate.SetPosition(*cmd.Position()); err != nil {
			return err
		}
	}

	if cmd.Features() != nil {
		aggregate.SetFeatures(*cmd.Features())
	}

	switch {
	case cmd.ClearPreferredDriver():
		aggregate.ClearPreferredDriver()
	case cmd.PreferredDriverID() != nil:
		if _, err = uow.DriverRepository().Get(ctx, *cmd.PreferredDriverID()); err != nil {
			return err
		}
		if err = aggregate.SetPreferredDriver(*cmd.PreferredDriverID()); err != nil {
			return err
		}
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
