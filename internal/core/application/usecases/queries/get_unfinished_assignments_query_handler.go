package queries

import (
	"context"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfinishedAssignmentsQueryHandler retrieves open assignments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUnfinishedAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinishedAssignmentsQueryHandler creates a handler for open assignment queries.
func NewGetUnfinishedAssignmentsQueryHandler(db *gorm.DB) GetUnfinishedAssignmentsQueryHandler {
	return GetUnfinishedAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal assignments.
// Returns a slice of read models sorted oldest request first.
func (h GetUnfinishedAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedAssignmentsQuery,
) ([]GetUnfinishedAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetUnfinishedAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			driver_id,
			service_type,
			destination_desc,
			requested_start,
			status
		FROM assignments
		WHERE status NOT IN (?, ?)
		ORDER BY requested_at
	`, int(assignment.StatusCompleted), int(assignment.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUnfinishedAssignmentsQueryResponse
		var id uuid.UUID
		var vehicleID, driverID *uuid.UUID
		var serviceType, status int

		err = rows.Scan(
			&id,
			&vehicleID,
			&driverID,
			&serviceType,
			&response.DestinationDesc,
			&response.RequestedStart,
			&status,
		)
		if err != nil {
			return nil, err
		}

		assignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = assignmentID

		if vehicleID != nil {
			vID, vErr := kernel.UUIDFromBytes((*vehicleID)[:])
			if vErr != nil {
				return nil, vErr
			}
			response.VehicleID = &vID
		}

		if driverID != nil {
			dID, dErr := kernel.UUIDFromBytes((*driverID)[:])
			if dErr != nil {
				return nil, dErr
			}
			response.DriverID = &dID
		}

		response.ServiceType = assignment.ServiceType(serviceType).String()
		response.Status = assignment.Status(status).String()

		assignments = append(assignments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
