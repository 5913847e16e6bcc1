package commands

import (
	"context"
)

// UpdateDriverCommandHandler applies administrative changes to a driver.
// Deactivation only prevents new selections; work in progress is untouched.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver update operations.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver update command.
// Loads the driver, applies the changed fields and persists it in one transaction.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		if err = aggregate.SetStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if cmd.Active() != nil {
		if *cmd.Active() {
			aggregate.Activate()
		} else {
			aggregate.Deactivate()
		}
	}

	if cmd.Phone() != nil || cmd.Email() != nil {
		phone := aggregate.Phone()
		if cmd.Phone() != nil {
			phone = cmd.Phone()
		}
		email := aggregate.Email()
		if cmd.Email() != nil {
			email = cmd.Email()
		}
		aggregate.SetContact(phone, email)
	}

	if cmd.Position() != nil {
		if err = aggregate.SetPosition(*cmd.Position()); err != nil {
			return err
		}
	}

	if cmd.QualifiedTypes() != nil {
		if err = aggregate.SetQualifiedTypes(cmd.QualifiedTypes()); err != nil {
			return err
		}
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
