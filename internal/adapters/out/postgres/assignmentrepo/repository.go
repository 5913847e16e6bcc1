package assignmentrepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPendingAutoAssignment retrieves the oldest assignment still waiting
// for automatic resource matching, in request order so the matching sweep is
// first-come-first-served.
func (r *GormAssignmentRepository) GetFirstPendingAutoAssignment(ctx context.Context) (*assignment.Assignment, error) {
	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(assignment.StatusPendingAutoAssignment)).
		Order("requested_at").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending assignment", "")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnfinished retrieves all assignments that have not reached a terminal
// status.
func (r *GormAssignmentRepository) GetAllUnfinished(ctx context.Context) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("status NOT IN (?, ?)", int(assignment.StatusCompleted), int(assignment.StatusCancelled)).
		Order("requested_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByVehicle retrieves all non-terminal assignments holding the given
// vehicle.
func (r *GormAssignmentRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status NOT IN (?, ?)",
			vehicleID.Bytes(), int(assignment.StatusCompleted), int(assignment.StatusCancelled)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByDriver retrieves all non-terminal assignments holding the given
// driver.
func (r *GormAssignmentRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status NOT IN (?, ?)",
			driverID.Bytes(), int(assignment.StatusCompleted), int(assignment.StatusCancelled)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
