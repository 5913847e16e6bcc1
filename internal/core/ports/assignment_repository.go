package ports

import (
	"context"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment aggregates.
// Provides methods for storing, retrieving, and querying transport assignments
// based on their lifecycle status and attached resources.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	// The assignment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	// The assignment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetFirstPendingAutoAssignment retrieves the oldest assignment still
	// waiting for automatic resource matching. Used by the matching sweep
	// to pick up pending work in request order.
	GetFirstPendingAutoAssignment(ctx context.Context) (*assignment.Assignment, error)

	// GetAllUnfinished retrieves all assignments that have not reached a
	// terminal status.
	GetAllUnfinished(ctx context.Context) ([]*assignment.Assignment, error)

	// GetAllByVehicle retrieves all non-terminal assignments holding the
	// given vehicle.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllByDriver retrieves all non-terminal assignments holding the
	// given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*assignment.Assignment, error)
}
