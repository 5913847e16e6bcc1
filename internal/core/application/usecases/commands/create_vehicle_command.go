package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle in the fleet.
// Encapsulates the vehicle's identity, descriptive attributes and capacities.
//
// Example:
//
//	vehicleID := kernel.NewUUID()
//	cmd, err := NewCreateVehicleCommand(vehicleID, "AB123CD", "Toyota", "Hiace",
//	    vehicle.TypePassengerVan, 8, nil, "wheelchair ramp")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID         kernel.UUID
	plate             string
	vehicleMake       string
	model             string
	vehicleType       vehicle.Type
	passengerCapacity int
	cargoCapacityKG   *int
	features          string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates identity, plate, make, model, the type enum and both capacities.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	plate string,
	vehicleMake string,
	model string,
	vehicleType vehicle.Type,
	passengerCapacity int,
	cargoCapacityKG *int,
	features string,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		features: features,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
		cmd.setMake(vehicleMake),
		cmd.setModel(model),
		cmd.setVehicleType(vehicleType),
		cmd.setPassengerCapacity(passengerCapacity),
		cmd.setCargoCapacityKG(cargoCapacityKG),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the unique license plate.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// Make returns the vehicle manufacturer.
func (c CreateVehicleCommand) Make() string {
	return c.vehicleMake
}

// Model returns the vehicle model.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// VehicleType returns the vehicle type classification.
func (c CreateVehicleCommand) VehicleType() vehicle.Type {
	return c.vehicleType
}

// PassengerCapacity returns the seat count.
func (c CreateVehicleCommand) PassengerCapacity() int {
	return c.passengerCapacity
}

// CargoCapacityKG returns the optional cargo capacity in kilograms.
func (c CreateVehicleCommand) CargoCapacityKG() *int {
	return c.cargoCapacityKG
}

// Features returns the free-text special feature description.
func (c CreateVehicleCommand) Features() string {
	return c.features
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}

	c.vehicleMake = vehicleMake
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *CreateVehicleCommand) setVehicleType(vehicleType vehicle.Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateVehicleCommand) setPassengerCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidError("passenger_capacity")
	}

	c.passengerCapacity = capacity
	return nil
}

func (c *CreateVehicleCommand) setCargoCapacityKG(capacity *int) error {
	if capacity != nil && *capacity <= 0 {
		return errs.NewValueIsInvalidError("cargo_capacity_kg")
	}

	c.cargoCapacityKG = capacity
	return nil
}
