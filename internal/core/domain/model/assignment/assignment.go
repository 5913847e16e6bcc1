package assignment

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrDestinationIsRequired is returned when creating an assignment without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination description")
	// ErrRequestedStartIsRequired is returned when creating an assignment without a requested start time.
	ErrRequestedStartIsRequired = errs.NewValueIsRequiredError("requested start")
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is the aggregate root for a transport request. It holds the
// service description, the time window, the resource requirements, the
// lifecycle status and non-owning references to the vehicle and driver
// servicing it.
//
// Invariants:
//   - Status active or completed implies both resources are attached
//     (transition methods enforce this; only resource deletion may detach
//     afterwards, degrading the link rather than destroying the record)
//   - expectedEnd, when set, is strictly after requestedStart
//   - requestedAt is set once, at creation, from the server clock
//   - actualEnd is set only by Complete
type Assignment struct {
	id              kernel.UUID
	vehicleID       *kernel.UUID
	driverID        *kernel.UUID
	serviceType     ServiceType
	originDesc      string
	destinationDesc string
	origin          *kernel.GeoPoint
	destination     *kernel.GeoPoint
	requestedStart  time.Time
	expectedEnd     *time.Time
	actualEnd       *time.Time
	status          Status
	requirements    Requirements
	requestedAt     time.Time
	notes           string

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in the pending_auto_assignment status
// with the request timestamp taken from the server clock. Destination and
// requested start are required. Resources are attached separately, either by
// the matching engine or by explicit attachment.
func NewAssignment(
	id kernel.UUID,
	serviceType ServiceType,
	destinationDesc string,
	requestedStart time.Time,
	requirements Requirements,
) (*Assignment, error) {
	a := &Assignment{
		status:      StatusPendingAutoAssignment,
		requestedAt: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setServiceType(serviceType),
		a.setDestinationDesc(destinationDesc),
		a.setRequestedStart(requestedStart),
		a.setRequirements(requirements),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistent storage with
// its full state, including the stored request timestamp.
func RestoreAssignment(
	id kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	serviceType ServiceType,
	originDesc string,
	destinationDesc string,
	origin *kernel.GeoPoint,
	destination *kernel.GeoPoint,
	requestedStart time.Time,
	expectedEnd *time.Time,
	actualEnd *time.Time,
	status Status,
	requirements Requirements,
	requestedAt time.Time,
	notes string,
) (*Assignment, error) {
	a, err := NewAssignment(id, serviceType, destinationDesc, requestedStart, requirements)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if vehicleID != nil {
		if err = vehicleID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}

	a.vehicleID = vehicleID
	a.driverID = driverID
	a.status = status
	a.originDesc = originDesc
	a.origin = origin
	a.destination = destination
	a.expectedEnd = expectedEnd
	a.actualEnd = actualEnd
	a.requestedAt = requestedAt
	a.notes = notes

	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// VehicleID returns the referenced vehicle, or nil when unassigned.
func (a *Assignment) VehicleID() *kernel.UUID {
	return a.vehicleID
}

// DriverID returns the referenced driver, or nil when unassigned.
func (a *Assignment) DriverID() *kernel.UUID {
	return a.driverID
}

// ServiceType returns the kind of transport requested.
func (a *Assignment) ServiceType() ServiceType {
	return a.serviceType
}

// OriginDescription returns the optional origin description.
func (a *Assignment) OriginDescription() string {
	return a.originDesc
}

// DestinationDescription returns the destination description.
func (a *Assignment) DestinationDescription() string {
	return a.destinationDesc
}

// Origin returns the optional origin coordinates.
func (a *Assignment) Origin() *kernel.GeoPoint {
	return a.origin
}

// Destination returns the optional destination coordinates.
func (a *Assignment) Destination() *kernel.GeoPoint {
	return a.destination
}

// RequestedStart returns when the service is needed.
func (a *Assignment) RequestedStart() time.Time {
	return a.requestedStart
}

// ExpectedEnd returns the expected end of the service, or nil.
func (a *Assignment) ExpectedEnd() *time.Time {
	return a.expectedEnd
}

// ActualEnd returns when the service actually finished, or nil while it has not.
func (a *Assignment) ActualEnd() *time.Time {
	return a.actualEnd
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// Requirements returns the resource requirements.
func (a *Assignment) Requirements() Requirements {
	return a.requirements
}

// RequestedAt returns the immutable request timestamp.
func (a *Assignment) RequestedAt() time.Time {
	return a.requestedAt
}

// Notes returns the free-text notes.
func (a *Assignment) Notes() string {
	return a.notes
}

// HasResources reports whether both a vehicle and a driver are attached.
func (a *Assignment) HasResources() bool {
	return a.vehicleID != nil && a.driverID != nil
}

// SetOrigin records the origin description and optional coordinates.
func (a *Assignment) SetOrigin(desc string, point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	a.originDesc = desc
	a.origin = point
	return nil
}

// SetDestination updates the destination description and optional coordinates.
func (a *Assignment) SetDestination(desc string, point *kernel.GeoPoint) error {
	if desc == "" {
		return ErrDestinationIsRequired
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	a.destinationDesc = desc
	a.destination = point
	return nil
}

// SetNotes replaces the free-text notes.
func (a *Assignment) SetNotes(notes string) {
	a.notes = notes
}

// SetExpectedEnd records the expected end of the service. The expected end
// must be strictly after the requested start; an equal timestamp is rejected.
func (a *Assignment) SetExpectedEnd(expectedEnd time.Time) error {
	if !expectedEnd.After(a.requestedStart) {
		return errs.NewValueIsInvalidErrorWithCause("expected_end",
			fmt.Errorf("%s is not strictly after requested start %s",
				expectedEnd.Format(time.RFC3339), a.requestedStart.Format(time.RFC3339)))
	}
	a.expectedEnd = &expectedEnd
	return nil
}

// SetServiceType replaces the service type.
func (a *Assignment) SetServiceType(t ServiceType) error {
	return a.setServiceType(t)
}

// SetRequestedStart moves the start of the service window. The expected end,
// when set, must remain strictly after the new start.
func (a *Assignment) SetRequestedStart(start time.Time) error {
	if start.IsZero() {
		return ErrRequestedStartIsRequired
	}
	if a.expectedEnd != nil && !a.expectedEnd.After(start) {
		return errs.NewValueIsInvalidErrorWithCause("requested_start",
			fmt.Errorf("%s is not strictly before expected end %s",
				start.Format(time.RFC3339), a.expectedEnd.Format(time.RFC3339)))
	}
	a.requestedStart = start
	return nil
}

// SetRequirements replaces the resource requirements. Resources already
// attached are not re-validated; the new demand only constrains future
// matching.
func (a *Assignment) SetRequirements(r Requirements) error {
	return a.setRequirements(r)
}

// AttachResources attaches a vehicle and driver pair and schedules the
// assignment. Allowed from pending_auto_assignment and
// auto_assignment_failed.
func (a *Assignment) AttachResources(vehicleID, driverID kernel.UUID) error {
	if err := errors.Join(vehicleID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	newStatus, err := a.status.Schedule()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.vehicleID = &vehicleID
	a.driverID = &driverID
	return nil
}

// ReplaceResources swaps the attached pair on a scheduled assignment without
// changing the status. Used when an operator re-points a scheduled assignment
// at different resources.
func (a *Assignment) ReplaceResources(vehicleID, driverID kernel.UUID) error {
	if a.status != StatusScheduled {
		return errs.NewInvalidTransitionError(a.status.String(), "replace_resources")
	}
	if err := errors.Join(vehicleID.Validate(), driverID.Validate()); err != nil {
		return err
	}
	a.vehicleID = &vehicleID
	a.driverID = &driverID
	return nil
}

// Start moves a scheduled assignment to active. Both resources must be
// attached; the caller is responsible for claiming them in the same
// transaction.
func (a *Assignment) Start() error {
	if !a.HasResources() {
		return errs.NewInvalidTransitionErrorWithReason(a.status.String(), "start",
			"vehicle and driver must be attached")
	}

	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Complete moves an active assignment to completed and records the actual end
// timestamp. Completing an already-completed assignment fails with
// InvalidTransition and changes nothing.
func (a *Assignment) Complete(now time.Time) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	end := now.UTC()
	a.actualEnd = &end
	return nil
}

// Cancel moves any non-terminal assignment to cancelled. The caller releases
// any held resources in the same transaction.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// FailAutoAssignment marks a pending assignment as failed matching, surfacing
// it for manual intervention.
func (a *Assignment) FailAutoAssignment() error {
	newStatus, err := a.status.FailAutoAssignment()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// DetachVehicle degrades the vehicle link to unassigned. Called when the
// referenced vehicle is deleted; the assignment record itself survives.
func (a *Assignment) DetachVehicle() {
	a.vehicleID = nil
}

// DetachDriver degrades the driver link to unassigned.
func (a *Assignment) DetachDriver() {
	a.driverID = nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setServiceType(t ServiceType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.serviceType = t
	return nil
}

func (a *Assignment) setDestinationDesc(desc string) error {
	if desc == "" {
		return ErrDestinationIsRequired
	}
	a.destinationDesc = desc
	return nil
}

func (a *Assignment) setRequestedStart(start time.Time) error {
	if start.IsZero() {
		return ErrRequestedStartIsRequired
	}
	a.requestedStart = start
	return nil
}

func (a *Assignment) setRequirements(r Requirements) error {
	if err := r.Validate(); err != nil {
		return err
	}
	a.requirements = r
	return nil
}
