// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves information about all vehicles in the fleet.
// Returns identity, capacities and current availability for monitoring and
// manual resource selection.
//
// Example:
//
//	query := NewGetAllVehiclesQuery()
//	handler := NewGetAllVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve vehicles: %w", err)
//	}
//
//	for _, v := range vehicles {
//	    fmt.Printf("%s (%s) %s\n", v.Plate, v.Type, v.Status)
//	}
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
// This is a parameterless query that fetches the complete vehicle list.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse represents vehicle information in the read model.
type GetAllVehiclesQueryResponse struct {
	ID                kernel.UUID
	Plate             string
	Make              string
	Model             string
	Type              string
	PassengerCapacity int
	CargoCapacityKG   *int
	Status            string
}
