package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var ErrUpdateAssignmentCommandIsNotConstructed = errors.New(
	"UpdateAssignmentCommand must be created via NewUpdateAssignmentCommand constructor",
)

// UpdateAssignmentCommand represents a request to change an assignment.
// Nil fields are left untouched. The request timestamp is immutable and not
// representable here at all.
//
// Supplying both resource references performs a manual attachment: a pending
// or auto-assignment-failed record moves to scheduled, a scheduled record has
// its pair replaced.
type UpdateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID    kernel.UUID
	originDesc      *string
	destinationDesc *string
	origin          *kernel.GeoPoint
	destination     *kernel.GeoPoint
	expectedEnd     *time.Time
	notes           *string
	vehicleID       *kernel.UUID
	driverID        *kernel.UUID

	serviceType    *assignment.ServiceType
	requestedStart *time.Time
	passengers     *int
	cargoKG        *int
	preferredType  *vehicle.Type
	special        *string

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentCommand creates a command to mutate an assignment.
// Vehicle and driver must be supplied together or not at all.
func NewUpdateAssignmentCommand(
	assignmentID kernel.UUID,
	originDesc *string,
	destinationDesc *string,
	origin *kernel.GeoPoint,
	destination *kernel.GeoPoint,
	expectedEnd *time.Time,
	notes *string,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
) (UpdateAssignmentCommand, error) {
	cmd := UpdateAssignmentCommand{
		originDesc:      originDesc,
		destinationDesc: destinationDesc,
		origin:          origin,
		destination:     destination,
		expectedEnd:     expectedEnd,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setResources(vehicleID, driverID),
	); err != nil {
		return UpdateAssignmentCommand{}, err
	}

	return cmd, nil
}

// WithServiceType requests a service type change.
func (c UpdateAssignmentCommand) WithServiceType(serviceType assignment.ServiceType) UpdateAssignmentCommand {
	c.serviceType = &serviceType
	return c
}

// WithRequestedStart requests a change of the service window start.
func (c UpdateAssignmentCommand) WithRequestedStart(requestedStart time.Time) UpdateAssignmentCommand {
	c.requestedStart = &requestedStart
	return c
}

// WithRequirements requests changes to the resource requirements. Nil fields
// are left untouched; changed requirements only constrain future matching,
// resources already attached are not re-validated.
func (c UpdateAssignmentCommand) WithRequirements(passengers, cargoKG *int, preferredType *vehicle.Type, special *string) UpdateAssignmentCommand {
	c.passengers = passengers
	c.cargoKG = cargoKG
	c.preferredType = preferredType
	c.special = special
	return c
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to change.
func (c UpdateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OriginDesc returns the new origin description, or nil when unchanged.
func (c UpdateAssignmentCommand) OriginDesc() *string {
	return c.originDesc
}

// DestinationDesc returns the new destination description, or nil when unchanged.
func (c UpdateAssignmentCommand) DestinationDesc() *string {
	return c.destinationDesc
}

// Origin returns the new origin coordinates, or nil when unchanged.
func (c UpdateAssignmentCommand) Origin() *kernel.GeoPoint {
	return c.origin
}

// Destination returns the new destination coordinates, or nil when unchanged.
func (c UpdateAssignmentCommand) Destination() *kernel.GeoPoint {
	return c.destination
}

// ExpectedEnd returns the new expected end, or nil when unchanged.
func (c UpdateAssignmentCommand) ExpectedEnd() *time.Time {
	return c.expectedEnd
}

// Notes returns the new notes text, or nil when unchanged.
func (c UpdateAssignmentCommand) Notes() *string {
	return c.notes
}

// ServiceType returns the new service type, or nil when unchanged.
func (c UpdateAssignmentCommand) ServiceType() *assignment.ServiceType {
	return c.serviceType
}

// RequestedStart returns the new service window start, or nil when unchanged.
func (c UpdateAssignmentCommand) RequestedStart() *time.Time {
	return c.requestedStart
}

// Passengers returns the new passenger demand, or nil when unchanged.
func (c UpdateAssignmentCommand) Passengers() *int {
	return c.passengers
}

// CargoKG returns the new cargo demand, or nil when unchanged.
func (c UpdateAssignmentCommand) CargoKG() *int {
	return c.cargoKG
}

// PreferredType returns the new preferred vehicle type, or nil when unchanged.
func (c UpdateAssignmentCommand) PreferredType() *vehicle.Type {
	return c.preferredType
}

// Special returns the new special requirements text, or nil when unchanged.
func (c UpdateAssignmentCommand) Special() *string {
	return c.special
}

// HasRequirementChange reports whether any requirement field was supplied.
func (c UpdateAssignmentCommand) HasRequirementChange() bool {
	return c.passengers != nil || c.cargoKG != nil || c.preferredType != nil || c.special != nil
}

// VehicleID returns the new vehicle reference, or nil when unchanged.
func (c UpdateAssignmentCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// DriverID returns the new driver reference, or nil when unchanged.
func (c UpdateAssignmentCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// HasResourceChange reports whether a manual attachment or replacement was requested.
func (c UpdateAssignmentCommand) HasResourceChange() bool {
	return c.vehicleID != nil && c.driverID != nil
}

func (c *UpdateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentCommand) setResources(vehicleID, driverID *kernel.UUID) error {
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
