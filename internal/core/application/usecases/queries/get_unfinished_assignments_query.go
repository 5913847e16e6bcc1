package queries

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetUnfinishedAssignmentsQueryIsNotConstructed = errors.New(
	"GetUnfinishedAssignmentsQuery must be created via NewGetUnfinishedAssignmentsQuery constructor",
)

// GetUnfinishedAssignmentsQuery retrieves every assignment that has not
// reached a terminal status: everything still pending, scheduled, active or
// flagged after a failed auto-assignment.
//
// Example:
//
//	query := NewGetUnfinishedAssignmentsQuery()
//	handler := NewGetUnfinishedAssignmentsQueryHandler(db)
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve assignments: %w", err)
//	}
//
//	for _, a := range assignments {
//	    fmt.Printf("%s -> %s (%s)\n", a.ID, a.DestinationDesc, a.Status)
//	}
type GetUnfinishedAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinishedAssignmentsQuery creates a query to retrieve non-terminal assignments.
func NewGetUnfinishedAssignmentsQuery() GetUnfinishedAssignmentsQuery {
	return GetUnfinishedAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnfinishedAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedAssignmentsQueryIsNotConstructed)
}

// GetUnfinishedAssignmentsQueryResponse represents an open assignment in the read model.
type GetUnfinishedAssignmentsQueryResponse struct {
	ID              kernel.UUID
	VehicleID       *kernel.UUID
	DriverID        *kernel.UUID
	ServiceType     string
	DestinationDesc string
	RequestedStart  time.Time
	Status          string
}
