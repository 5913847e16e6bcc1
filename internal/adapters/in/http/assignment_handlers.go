package http

import (
	"net/http"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// CreateAssignmentRequest is the payload for POST /api/v1/assignments.
// Vehicle and driver must be supplied together or not at all; when absent,
// automatic matching runs before the response is written.
type CreateAssignmentRequest struct {
	ServiceType     string           `json:"service_type"`
	OriginDesc      string           `json:"origin_desc,omitempty"`
	DestinationDesc string           `json:"destination_desc"`
	Origin          *GeoPointPayload `json:"origin,omitempty"`
	Destination     *GeoPointPayload `json:"destination,omitempty"`
	RequestedStart  time.Time        `json:"requested_start"`
	ExpectedEnd     *time.Time       `json:"expected_end,omitempty"`
	Passengers      int              `json:"passengers"`
	CargoKG         *int             `json:"cargo_kg,omitempty"`
	PreferredType   *string          `json:"preferred_type,omitempty"`
	Special         string           `json:"special,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	VehicleID       *string          `json:"vehicle_id,omitempty"`
	DriverID        *string          `json:"driver_id,omitempty"`
}

// UpdateAssignmentRequest is the payload for PATCH /api/v1/assignments/:id.
// Absent fields are left untouched. The request timestamp is immutable, so a
// requested_at key is rejected outright.
type UpdateAssignmentRequest struct {
	ServiceType     *string          `json:"service_type,omitempty"`
	OriginDesc      *string          `json:"origin_desc,omitempty"`
	DestinationDesc *string          `json:"destination_desc,omitempty"`
	Origin          *GeoPointPayload `json:"origin,omitempty"`
	Destination     *GeoPointPayload `json:"destination,omitempty"`
	RequestedStart  *time.Time       `json:"requested_start,omitempty"`
	ExpectedEnd     *time.Time       `json:"expected_end,omitempty"`
	Passengers      *int             `json:"passengers,omitempty"`
	CargoKG         *int             `json:"cargo_kg,omitempty"`
	PreferredType   *string          `json:"preferred_type,omitempty"`
	Special         *string          `json:"special,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	VehicleID       *string          `json:"vehicle_id,omitempty"`
	DriverID        *string          `json:"driver_id,omitempty"`
	RequestedAt     *time.Time       `json:"requested_at,omitempty"`
}

// AssignmentResponse is the representation of a single assignment.
type AssignmentResponse struct {
	ID              string           `json:"id"`
	VehicleID       *string          `json:"vehicle_id,omitempty"`
	DriverID        *string          `json:"driver_id,omitempty"`
	ServiceType     string           `json:"service_type"`
	OriginDesc      string           `json:"origin_desc,omitempty"`
	DestinationDesc string           `json:"destination_desc"`
	Origin          *GeoPointPayload `json:"origin,omitempty"`
	Destination     *GeoPointPayload `json:"destination,omitempty"`
	RequestedStart  time.Time        `json:"requested_start"`
	ExpectedEnd     *time.Time       `json:"expected_end,omitempty"`
	ActualEnd       *time.Time       `json:"actual_end,omitempty"`
	Status          string           `json:"status"`
	Passengers      int              `json:"passengers"`
	CargoKG         *int             `json:"cargo_kg,omitempty"`
	PreferredType   *string          `json:"preferred_type,omitempty"`
	Special         string           `json:"special,omitempty"`
	RequestedAt     time.Time        `json:"requested_at"`
	Notes           string           `json:"notes,omitempty"`
}

// AssignmentListItem is the read-model representation used by the list endpoint.
type AssignmentListItem struct {
	ID              string    `json:"id"`
	VehicleID       *string   `json:"vehicle_id,omitempty"`
	DriverID        *string   `json:"driver_id,omitempty"`
	ServiceType     string    `json:"service_type"`
	DestinationDesc string    `json:"destination_desc"`
	RequestedStart  time.Time `json:"requested_start"`
	Status          string    `json:"status"`
}

// GetAssignments handles GET /api/v1/assignments - lists non-terminal assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	assignments, err := s.getUnfinishedAssignmentsHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnfinishedAssignmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AssignmentListItem, len(assignments))
	for i, a := range assignments {
		item := AssignmentListItem{
			ID:              a.ID.String(),
			ServiceType:     a.ServiceType,
			DestinationDesc: a.DestinationDesc,
			RequestedStart:  a.RequestedStart,
			Status:          a.Status,
		}
		if a.VehicleID != nil {
			raw := a.VehicleID.String()
			item.VehicleID = &raw
		}
		if a.DriverID != nil {
			raw := a.DriverID.String()
			item.DriverID = &raw
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignment handles GET /api/v1/assignments/:id.
func (s *Server) GetAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	a, err := s.uowFactory.Create().AssignmentRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentToResponse(a))
}

// CreateAssignment handles POST /api/v1/assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var req CreateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serviceType, err := assignment.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicleID, err := optionalIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}
	driverID, err := optionalIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(
		assignmentID, serviceType, req.DestinationDesc, req.RequestedStart,
		req.Passengers, vehicleID, driverID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	origin, err := geoPointFromPayload(req.Origin)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := geoPointFromPayload(req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	var preferredType *vehicle.Type
	if req.PreferredType != nil {
		parsed, typeErr := vehicle.TypeFromString(*req.PreferredType)
		if typeErr != nil {
			return writeError(ctx, typeErr)
		}
		preferredType = &parsed
	}

	cmd = cmd.WithOrigin(req.OriginDesc, origin).
		WithDestinationPoint(destination).
		WithRequirements(req.CargoKG, preferredType, req.Special).
		WithNotes(req.Notes)
	if req.ExpectedEnd != nil {
		cmd = cmd.WithExpectedEnd(*req.ExpectedEnd)
	}

	if err = s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	// Creation succeeds even when matching found nothing; the persisted
	// status tells the caller which outcome they got.
	created, err := s.uowFactory.Create().AssignmentRepository().Get(ctx.Request().Context(), assignmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, assignmentToResponse(created))
}

// UpdateAssignment handles PATCH /api/v1/assignments/:id.
func (s *Server) UpdateAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	var req UpdateAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	if req.RequestedAt != nil {
		return badRequest(ctx, "requested_at is immutable")
	}

	origin, err := geoPointFromPayload(req.Origin)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := geoPointFromPayload(req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicleID, err := optionalIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}
	driverID, err := optionalIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewUpdateAssignmentCommand(id, req.OriginDesc, req.DestinationDesc,
		origin, destination, req.ExpectedEnd, req.Notes, vehicleID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if req.ServiceType != nil {
		serviceType, typeErr := assignment.ServiceTypeFromString(*req.ServiceType)
		if typeErr != nil {
			return writeError(ctx, typeErr)
		}
		cmd = cmd.WithServiceType(serviceType)
	}
	if req.RequestedStart != nil {
		cmd = cmd.WithRequestedStart(*req.RequestedStart)
	}

	var preferredType *vehicle.Type
	if req.PreferredType != nil {
		parsed, typeErr := vehicle.TypeFromString(*req.PreferredType)
		if typeErr != nil {
			return writeError(ctx, typeErr)
		}
		preferredType = &parsed
	}
	cmd = cmd.WithRequirements(req.Passengers, req.CargoKG, preferredType, req.Special)

	if err = s.updateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartAssignment handles POST /api/v1/assignments/:id/start.
func (s *Server) StartAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	cmd, err := commands.NewStartAssignmentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithAssignment(ctx, id)
}

// CompleteAssignment handles POST /api/v1/assignments/:id/complete.
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	cmd, err := commands.NewCompleteAssignmentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithAssignment(ctx, id)
}

// CancelAssignment handles POST /api/v1/assignments/:id/cancel.
func (s *Server) CancelAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	cmd, err := commands.NewCancelAssignmentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithAssignment(ctx, id)
}

// MatchAssignment handles POST /api/v1/assignments/:id/match - retries
// matching for a specific assignment.
func (s *Server) MatchAssignment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid assignment id")
	}

	cmd, err := commands.NewMatchAssignmentCommandForID(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.matchAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithAssignment(ctx, id)
}

// respondWithAssignment re-reads the assignment after a state change so the
// caller gets the updated record, not just an acknowledgement.
func (s *Server) respondWithAssignment(ctx echo.Context, id kernel.UUID) error {
	a, err := s.uowFactory.Create().AssignmentRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentToResponse(a))
}

func optionalIDFromString(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func assignmentToResponse(a *assignment.Assignment) AssignmentResponse {
	req := a.Requirements()

	response := AssignmentResponse{
		ID:              a.ID().String(),
		ServiceType:     a.ServiceType().String(),
		OriginDesc:      a.OriginDescription(),
		DestinationDesc: a.DestinationDescription(),
		Origin:          geoPointToPayload(a.Origin()),
		Destination:     geoPointToPayload(a.Destination()),
		RequestedStart:  a.RequestedStart(),
		ExpectedEnd:     a.ExpectedEnd(),
		ActualEnd:       a.ActualEnd(),
		Status:          a.Status().String(),
		Passengers:      req.Passengers(),
		CargoKG:         req.CargoKG(),
		Special:         req.Special(),
		RequestedAt:     a.RequestedAt(),
		Notes:           a.Notes(),
	}

	if vid := a.VehicleID(); vid != nil {
		raw := vid.String()
		response.VehicleID = &raw
	}
	if did := a.DriverID(); did != nil {
		raw := did.String()
		response.DriverID = &raw
	}
	if pt := req.PreferredType(); pt != nil {
		raw := pt.String()
		response.PreferredType = &raw
	}

	return response
}
