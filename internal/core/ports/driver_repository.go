package ports

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver and takes a write lock on its row
	// for the duration of the current transaction. Concurrent claims on
	// the same driver serialize behind this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all active drivers whose status allows
	// them to take new work.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// GetAllActive retrieves all drivers that have not been deactivated,
	// regardless of their availability status.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)

	// Delete removes a driver aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
