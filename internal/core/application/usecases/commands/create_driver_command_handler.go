package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// New drivers start active and in the "available" status.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	aggregate, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.LicenseNumber(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.LicenseExpiry(),
		cmd.QualifiedTypes(),
	)
	if err != nil {
		return err
	}

	aggregate.SetContact(cmd.Phone(), cmd.Email())

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
