package commands

import (
	"context"
	"time"
)

// DeactivateExpiredDriversCommandHandler deactivates drivers whose license
// has expired. Deactivation does not interrupt work in progress; it only
// keeps the driver out of future selections.
type DeactivateExpiredDriversCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeactivateExpiredDriversCommandHandler creates a handler for the license expiry sweep.
func NewDeactivateExpiredDriversCommandHandler(uowFactory DriverUoWFactory) DeactivateExpiredDriversCommandHandler {
	return DeactivateExpiredDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep, deactivating all expired licenses in one transaction.
func (h DeactivateExpiredDriversCommandHandler) Handle(ctx context.Context, cmd DeactivateExpiredDriversCommand) error {
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

	drivers, err := driverRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, d := range drivers {
		if !d.IsLicenseExpired(now) {
			continue
		}

		d.Deactivate()
		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
