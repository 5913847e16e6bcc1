package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/pkg/errs"
)

// UpdateAssignmentCommandHandler applies changes to an assignment record.
//
// A changed vehicle reference is re-validated against the vehicle's current
// status, the new vehicle is reserved and the previously held one released,
// all within the same transaction.
type UpdateAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateAssignmentCommandHandler creates a handler for assignment update operations.
func NewUpdateAssignmentCommandHandler(uowFactory UoWFactory) UpdateAssignmentCommandHandler {
	return UpdateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment update command.
func (h UpdateAssignmentCommandHandler) Handle(ctx context.Context, cmd UpdateAssignmentCommand) error {
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

	if err = h.applyFieldChanges(aggregate, cmd); err != nil {
		return err
	}

	if cmd.HasResourceChange() {
		if err = h.applyResourceChange(ctx, uow, aggregate, cmd); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h UpdateAssignmentCommandHandler) applyFieldChanges(
	aggregate *assignment.Assignment,
	cmd UpdateAssignmentCommand,
) error {
	if cmd.ServiceType() != nil {
		if err := aggregate.SetServiceType(*cmd.ServiceType()); err != nil {
			return err
		}
	}

	if cmd.OriginDesc() != nil || cmd.Origin() != nil {
		desc := aggregate.OriginDescription()
		if cmd.OriginDesc() != nil {
			desc = *cmd.OriginDesc()
		}
		point := aggregate.Origin()
		if cmd.Origin() != nil {
			point = cmd.Origin()
		}
		if err := aggregate.SetOrigin(desc, point); err != nil {
			return err
		}
	}

	if cmd.DestinationDesc() != nil || cmd.Destination() != nil {
		desc := aggregate.DestinationDescription()
		if cmd.DestinationDesc() != nil {
			desc = *cmd.DestinationDesc()
		}
		point := aggregate.Destination()
		if cmd.Destination() != nil {
			point = cmd.Destination()
		}
		if err := aggregate.SetDestination(desc, point); err != nil {
			return err
		}
	}

	if err := h.applyWindowChange(aggregate, cmd); err != nil {
		return err
	}

	if err := h.applyRequirementChange(aggregate, cmd); err != nil {
		return err
	}

	if cmd.Notes() != nil {
		aggregate.SetNotes(*cmd.Notes())
	}

	return nil
}

// applyWindowChange moves the requested start and expected end. When both
// move together the setters are ordered so the intermediate state never trips
// the start-before-end check.
func (h UpdateAssignmentCommandHandler) applyWindowChange(
	aggregate *assignment.Assignment,
	cmd UpdateAssignmentCommand,
) error {
	switch {
	case cmd.RequestedStart() == nil && cmd.ExpectedEnd() == nil:
		return nil
	case cmd.RequestedStart() == nil:
		return aggregate.SetExpectedEnd(*cmd.ExpectedEnd())
	case cmd.ExpectedEnd() == nil:
		return aggregate.SetRequestedStart(*cmd.RequestedStart())
	case cmd.ExpectedEnd().After(aggregate.RequestedStart()):
		if err := aggregate.SetExpectedEnd(*cmd.ExpectedEnd()); err != nil {
			return err
		}
		return aggregate.SetRequestedStart(*cmd.RequestedStart())
	default:
		if err := aggregate.SetRequestedStart(*cmd.RequestedStart()); err != nil {
			return err
		}
		return aggregate.SetExpectedEnd(*cmd.ExpectedEnd())
	}
}

// applyRequirementChange merges the supplied requirement fields over the
// current ones and revalidates the set as a whole.
func (h UpdateAssignmentCommandHandler) applyRequirementChange(
	aggregate *assignment.Assignment,
	cmd UpdateAssignmentCommand,
) error {
	if !cmd.HasRequirementChange() {
		return nil
	}

	current := aggregate.Requirements()

	passengers := current.Passengers()
	if cmd.Passengers() != nil {
		passengers = *cmd.Passengers()
	}
	cargoKG := current.CargoKG()
	if cmd.CargoKG() != nil {
		cargoKG = cmd.CargoKG()
	}
	preferredType := current.PreferredType()
	if cmd.PreferredType() != nil {
		preferredType = cmd.PreferredType()
	}
	special := current.Special()
	if cmd.Special() != nil {
		special = *cmd.Special()
	}

	req, err := assignment.NewRequirements(passengers, cargoKG, preferredType, special)
	if err != nil {
		return err
	}

	return aggregate.SetRequirements(req)
}

// applyResourceChange performs a manual attachment or pair replacement.
// The newly referenced vehicle must be claimable and the driver able to
// take work; a vehicle held by the assignment so far is released.
func (h UpdateAssignmentCommandHandler) applyResourceChange(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.Assignment,
	cmd UpdateAssignmentCommand,
) error {
	vehicleRepo := uow.VehicleRepository()

	vehicleChanged := aggregate.VehicleID() == nil || !aggregate.VehicleID().IsEqual(*cmd.VehicleID())

	newVehicle, err := vehicleRepo.GetForUpdate(ctx, *cmd.VehicleID())
	if err != nil {
		return err
	}

	newDriver, err := uow.DriverRepository().Get(ctx, *cmd.DriverID())
	if err != nil {
		return err
	}

	if !newDriver.CanTakeWork() {
		return errs.NewResourceUnavailableErrorWithCause(
			"driver", newDriver.LicenseNumber(), newDriver.Status().String(),
			errors.New("driver cannot take new work"),
		)
	}

	if vehicleChanged {
		if aggregate.VehicleID() != nil {
			held, getErr := vehicleRepo.GetForUpdate(ctx, *aggregate.VehicleID())
			if getErr != nil && !errors.Is(getErr, errs.ErrObjectNotFound) {
				return getErr
			}
			if getErr == nil {
				held.Release()
				if updErr := vehicleRepo.Update(ctx, held); updErr != nil {
					return updErr
				}
			}
		}

		if err = newVehicle.Reserve(); err != nil {
			return err
		}
		if err = vehicleRepo.Update(ctx, newVehicle); err != nil {
			return err
		}
	}

	switch aggregate.Status() {
	case assignment.StatusScheduled:
		return aggregate.ReplaceResources(newVehicle.ID(), newDriver.ID())
	default:
		return aggregate.AttachResources(newVehicle.ID(), newDriver.ID())
	}
}
