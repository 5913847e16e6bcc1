package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"
)

// CreateAssignmentCommandHandler handles the business logic for assignment creation.
//
// With pre-selected resources the vehicle is validated as claimable, the
// driver as active and available, the vehicle is reserved and the assignment
// starts out scheduled. Without resources a match is attempted synchronously:
// success schedules the assignment, an exhausted candidate pool records it as
// auto_assignment_failed for manual intervention. Either way the assignment
// record is persisted.
type CreateAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation operations.
// Requires a UoWFactory because creation may claim a vehicle in the same transaction.
func NewCreateAssignmentCommandHandler(uowFactory UoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.buildAssignment(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.HasPreselectedResources() {
		err = h.claimPreselected(ctx, uow, aggregate, cmd)
	} else {
		err = h.matchAutomatically(ctx, uow, aggregate)
	}
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateAssignmentCommandHandler) buildAssignment(cmd CreateAssignmentCommand) (*assignment.Assignment, error) {
	req, err := assignment.NewRequirements(cmd.Passengers(), cmd.CargoKG(), cmd.PreferredType(), cmd.Special())
	if err != nil {
		return nil, err
	}

	aggregate, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.ServiceType(),
		cmd.DestinationDesc(),
		cmd.RequestedStart(),
		req,
	)
	if err != nil {
		return nil, err
	}

	if cmd.ExpectedEnd() != nil {
		if err = aggregate.SetExpectedEnd(*cmd.ExpectedEnd()); err != nil {
			return nil, err
		}
	}
	if cmd.OriginDesc() != "" || cmd.Origin() != nil {
		if err = aggregate.SetOrigin(cmd.OriginDesc(), cmd.Origin()); err != nil {
			return nil, err
		}
	}
	if cmd.Destination() != nil {
		if err = aggregate.SetDestination(cmd.DestinationDesc(), cmd.Destination()); err != nil {
			return nil, err
		}
	}
	aggregate.SetNotes(cmd.Notes())

	return aggregate, nil
}

// claimPreselected validates and reserves the resources the client chose.
func (h CreateAssignmentCommandHandler) claimPreselected(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.Assignment,
	cmd CreateAssignmentCommand,
) error {
	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.GetForUpdate(ctx, *cmd.PreselectedVehicleID())
	if err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, *cmd.PreselectedDriverID())
	if err != nil {
		return err
	}

	if !d.CanTakeWork() {
		return errs.NewResourceUnavailableErrorWithCause(
			"driver", d.LicenseNumber(), d.Status().String(),
			errors.New("driver cannot take new work"),
		)
	}

	if err = v.Reserve(); err != nil {
		return err
	}

	if err = aggregate.AttachResources(v.ID(), d.ID()); err != nil {
		return err
	}

	return vehicleRepo.Update(ctx, v)
}

// matchAutomatically runs the matcher over the currently available pool and
// claims the chosen vehicle under a row lock. An exhausted pool is an
// expected outcome, not an error: the assignment is recorded as
// auto_assignment_failed and creation still succeeds.
func (h CreateAssignmentCommandHandler) matchAutomatically(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.Assignment,
) error {
	err := matchAndClaim(ctx, uow, aggregate)
	if errors.Is(err, services.ErrNoMatchFound) {
		return aggregate.FailAutoAssignment()
	}

	return err
}
