// Package ports defines repository interfaces for the fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Provides methods for storing, retrieving, and querying vehicle entities
// with their full operational state.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and takes a write lock on its row
	// for the duration of the current transaction. Concurrent claims on
	// the same vehicle serialize behind this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllAvailable retrieves all vehicles whose status allows them to
	// be claimed for new work.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetAllByPreferredDriver retrieves all vehicles that designate the
	// given driver as their preferred operator.
	GetAllByPreferredDriver(ctx context.Context, driverID kernel.UUID) ([]*vehicle.Vehicle, error)

	// Delete removes a vehicle aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
