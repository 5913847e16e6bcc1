package queries

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves all vehicle information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles.
// Returns a slice of vehicle read models sorted by plate.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			make,
			model,
			vehicle_type,
			passenger_capacity,
			cargo_capacity_kg,
			status
		FROM vehicles
		ORDER BY plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllVehiclesQueryResponse
		var id uuid.UUID
		var vehicleType, status int

		err = rows.Scan(
			&id,
			&response.Plate,
			&response.Make,
			&response.Model,
			&vehicleType,
			&response.PassengerCapacity,
			&response.CargoCapacityKG,
			&status,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = vehicleID
		response.Type = vehicle.Type(vehicleType).String()
		response.Status = vehicle.Status(status).String()

		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
