package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// New vehicles start in the "available" status, ready for matching.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration operations.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Uses a transaction to ensure the vehicle is properly persisted or rolled back on error.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	aggregate, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Plate(),
		cmd.Make(),
		cmd.Model(),
		cmd.VehicleType(),
		cmd.PassengerCapacity(),
		cmd.CargoCapacityKG(),
		cmd.Features(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
