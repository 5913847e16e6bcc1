package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateAssignmentCommandIsNotConstructed = errors.New(
		"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
	)
	ErrResourcesMustBeSuppliedTogether = errors.New(
		"vehicle and driver must be supplied together or not at all",
	)
)

// CreateAssignmentCommand represents a request for a new transport assignment.
// Resources may be pre-selected (vehicle and driver together) or left absent,
// in which case automatic matching is attempted.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(kernel.NewUUID(), assignment.ServiceStaff,
//	    "Central Hospital", start, req, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create assignment: %w", err)
//	}
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID    kernel.UUID
	serviceType     assignment.ServiceType
	originDesc      string
	destinationDesc string
	origin          *kernel.GeoPoint
	destination     *kernel.GeoPoint
	requestedStart  time.Time
	expectedEnd     *time.Time
	passengers      int
	cargoKG         *int
	preferredType   *vehicle.Type
	special         string
	notes           string
	vehicleID       *kernel.UUID
	driverID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to register a new assignment.
// Validates identity, the service type enum, the destination, the time window
// and that vehicle and driver are supplied together or not at all. Requirement
// fields are validated later by the domain model.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	serviceType assignment.ServiceType,
	destinationDesc string,
	requestedStart time.Time,
	passengers int,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		passengers: passengers,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setServiceType(serviceType),
		cmd.setDestinationDesc(destinationDesc),
		cmd.setRequestedStart(requestedStart),
		cmd.setResources(vehicleID, driverID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// WithOrigin sets the optional origin description and coordinates.
func (c CreateAssignmentCommand) WithOrigin(desc string, point *kernel.GeoPoint) CreateAssignmentCommand {
	c.originDesc = desc
	c.origin = point
	return c
}

// WithDestinationPoint sets the optional destination coordinates.
func (c CreateAssignmentCommand) WithDestinationPoint(point *kernel.GeoPoint) CreateAssignmentCommand {
	c.destination = point
	return c
}

// WithExpectedEnd sets the optional expected end of the service window.
func (c CreateAssignmentCommand) WithExpectedEnd(expectedEnd time.Time) CreateAssignmentCommand {
	c.expectedEnd = &expectedEnd
	return c
}

// WithRequirements sets the optional requirement fields beyond the passenger count.
func (c CreateAssignmentCommand) WithRequirements(cargoKG *int, preferredType *vehicle.Type, special string) CreateAssignmentCommand {
	c.cargoKG = cargoKG
	c.preferredType = preferredType
	c.special = special
	return c
}

// WithNotes sets the free-text notes.
func (c CreateAssignmentCommand) WithNotes(notes string) CreateAssignmentCommand {
	c.notes = notes
	return c
}

// AssignmentID returns the unique identifier for the assignment.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ServiceType returns the kind of transport requested.
func (c CreateAssignmentCommand) ServiceType() assignment.ServiceType {
	return c.serviceType
}

// OriginDesc returns the optional origin description.
func (c CreateAssignmentCommand) OriginDesc() string {
	return c.originDesc
}

// DestinationDesc returns the destination description.
func (c CreateAssignmentCommand) DestinationDesc() string {
	return c.destinationDesc
}

// Origin returns the optional origin coordinates.
func (c CreateAssignmentCommand) Origin() *kernel.GeoPoint {
	return c.origin
}

// Destination returns the optional destination coordinates.
func (c CreateAssignmentCommand) Destination() *kernel.GeoPoint {
	return c.destination
}

// RequestedStart returns the requested start of the service window.
func (c CreateAssignmentCommand) RequestedStart() time.Time {
	return c.requestedStart
}

// ExpectedEnd returns the optional expected end of the service window.
func (c CreateAssignmentCommand) ExpectedEnd() *time.Time {
	return c.expectedEnd
}

// Passengers returns the requested passenger count.
func (c CreateAssignmentCommand) Passengers() int {
	return c.passengers
}

// CargoKG returns the optional cargo weight requirement.
func (c CreateAssignmentCommand) CargoKG() *int {
	return c.cargoKG
}

// PreferredType returns the optional vehicle type preference.
func (c CreateAssignmentCommand) PreferredType() *vehicle.Type {
	return c.preferredType
}

// Special returns the free-text special requirement description.
func (c CreateAssignmentCommand) Special() string {
	return c.special
}

// Notes returns the free-text notes.
func (c CreateAssignmentCommand) Notes() string {
	return c.notes
}

// PreselectedVehicleID returns the pre-selected vehicle, or nil for automatic matching.
func (c CreateAssignmentCommand) PreselectedVehicleID() *kernel.UUID {
	return c.vehicleID
}

// PreselectedDriverID returns the pre-selected driver, or nil for automatic matching.
func (c CreateAssignmentCommand) PreselectedDriverID() *kernel.UUID {
	return c.driverID
}

// HasPreselectedResources reports whether the client chose the resources itself.
func (c CreateAssignmentCommand) HasPreselectedResources() bool {
	return c.vehicleID != nil && c.driverID != nil
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setServiceType(serviceType assignment.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateAssignmentCommand) setDestinationDesc(desc string) error {
	if desc == "" {
		return errs.NewValueIsRequiredError("destination_desc")
	}

	c.destinationDesc = desc
	return nil
}

func (c *CreateAssignmentCommand) setRequestedStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("requested_start")
	}

	c.requestedStart = start
	return nil
}

func (c *CreateAssignmentCommand) setResources(vehicleID, driverID *kernel.UUID) error {
	if (vehicleID == nil) != (driverID == nil) {
		return ErrResourcesMustBeSuppliedTogether
	}

	if vehicleID != nil {
		if err := errors.Join(vehicleID.Validate(), driverID.Validate()); err != nil {
			return err
		}
	}

	c.vehicleID = vehicleID
	c.driverID = driverID
	return nil
}
