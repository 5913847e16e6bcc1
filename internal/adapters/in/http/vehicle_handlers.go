package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// CreateVehicleRequest is the payload for POST /api/v1/vehicles.
type CreateVehicleRequest struct {
	Plate             string `json:"plate"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Type              string `json:"type"`
	PassengerCapacity int    `json:"passenger_capacity"`
	CargoCapacityKG   *int   `json:"cargo_capacity_kg,omitempty"`
	Features          string `json:"features,omitempty"`
}

// UpdateVehicleRequest is the payload for PATCH /api/v1/vehicles/:id.
// Absent fields are left untouched.
type UpdateVehicleRequest struct {
	Status               *string          `json:"status,omitempty"`
	Position             *GeoPointPayload `json:"position,omitempty"`
	Features             *string          `json:"features,omitempty"`
	PreferredDriverID    *string          `json:"preferred_driver_id,omitempty"`
	ClearPreferredDriver bool             `json:"clear_preferred_driver,omitempty"`
}

// VehicleResponse is the representation of a single vehicle.
type VehicleResponse struct {
	ID                string           `json:"id"`
	Plate             string           `json:"plate"`
	Make              string           `json:"make"`
	Model             string           `json:"model"`
	Type              string           `json:"type"`
	PassengerCapacity int              `json:"passenger_capacity"`
	CargoCapacityKG   *int             `json:"cargo_capacity_kg,omitempty"`
	Features          string           `json:"features,omitempty"`
	Position          *GeoPointPayload `json:"position,omitempty"`
	Status            string           `json:"status"`
	PreferredDriverID *string          `json:"preferred_driver_id,omitempty"`
}

// VehicleListItem is the read-model representation used by the list endpoint.
type VehicleListItem struct {
	ID                string `json:"id"`
	Plate             string `json:"plate"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Type              string `json:"type"`
	PassengerCapacity int    `json:"passenger_capacity"`
	CargoCapacityKG   *int   `json:"cargo_capacity_kg,omitempty"`
	Status            string `json:"status"`
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]VehicleListItem, len(vehicles))
	for i, v := range vehicles {
		response[i] = VehicleListItem{
			ID:                v.ID.String(),
			Plate:             v.Plate,
			Make:              v.Make,
			Model:             v.Model,
			Type:              v.Type,
			PassengerCapacity: v.PassengerCapacity,
			CargoCapacityKG:   v.CargoCapacityKG,
			Status:            v.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}

	v, err := s.uowFactory.Create().VehicleRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleToResponse(v))
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vehicleType, err := vehicle.TypeFromString(req.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID, req.Plate, req.Make, req.Model,
		vehicleType, req.PassengerCapacity, req.CargoCapacityKG, req.Features,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": vehicleID.String()})
}

// UpdateVehicle handles PATCH /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}

	var req UpdateVehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *vehicle.Status
	if req.Status != nil {
		parsed, statusErr := vehicle.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	position, err := geoPointFromPayload(req.Position)
	if err != nil {
		return writeError(ctx, err)
	}

	var preferredDriverID *kernel.UUID
	if req.PreferredDriverID != nil {
		parsed, idErr := kernel.UUIDFromString(*req.PreferredDriverID)
		if idErr != nil {
			return badRequest(ctx, "invalid preferred driver id")
		}
		preferredDriverID = &parsed
	}

	cmd, err := commands.NewUpdateVehicleCommand(id, status, position, req.Features,
		preferredDriverID, req.ClearPreferredDriver)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}

	cmd, err := commands.NewRemoveVehicleCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func vehicleToResponse(v *vehicle.Vehicle) VehicleResponse {
	response := VehicleResponse{
		ID:                v.ID().String(),
		Plate:             v.Plate(),
		Make:              v.Make(),
		Model:             v.Model(),
		Type:              v.Type().String(),
		PassengerCapacity: v.PassengerCapacity(),
		CargoCapacityKG:   v.CargoCapacityKG(),
		Features:          v.Features(),
		Position:          geoPointToPayload(v.Position()),
		Status:            v.Status().String(),
	}

	if pd := v.PreferredDriverID(); pd != nil {
		raw := pd.String()
		response.PreferredDriverID = &raw
	}

	return response
}
