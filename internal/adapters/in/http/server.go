// Package http exposes the fleet management API over echo.
// It coordinates between HTTP handlers and application use cases: list
// endpoints go through the read-model query handlers, single-record fetches
// through the repositories, and every mutation through a command handler.
package http

import (
	"errors"
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the fleet HTTP API.
type Server struct {
	uowFactory ports.UnitOfWorkFactory

	// Command handlers
	createVehicleHandler            commands.CreateVehicleCommandHandler
	updateVehicleHandler            commands.UpdateVehicleCommandHandler
	removeVehicleHandler            commands.RemoveVehicleCommandHandler
	createDriverHandler             commands.CreateDriverCommandHandler
	updateDriverHandler             commands.UpdateDriverCommandHandler
	removeDriverHandler             commands.RemoveDriverCommandHandler
	createAssignmentHandler         commands.CreateAssignmentCommandHandler
	updateAssignmentHandler         commands.UpdateAssignmentCommandHandler
	startAssignmentHandler          commands.StartAssignmentCommandHandler
	completeAssignmentHandler       commands.CompleteAssignmentCommandHandler
	cancelAssignmentHandler         commands.CancelAssignmentCommandHandler
	matchAssignmentHandler          commands.MatchAssignmentCommandHandler

	// Query handlers
	getAllVehiclesHandler            queries.GetAllVehiclesQueryHandler
	getAllDriversHandler             queries.GetAllDriversQueryHandler
	getUnfinishedAssignmentsHandler  queries.GetUnfinishedAssignmentsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	uowFactory ports.UnitOfWorkFactory,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	updateVehicleHandler commands.UpdateVehicleCommandHandler,
	removeVehicleHandler commands.RemoveVehicleCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHandler commands.UpdateDriverCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	updateAssignmentHandler commands.UpdateAssignmentCommandHandler,
	startAssignmentHandler commands.StartAssignmentCommandHandler,
	completeAssignmentHandler commands.CompleteAssignmentCommandHandler,
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler,
	matchAssignmentHandler commands.MatchAssignmentCommandHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getUnfinishedAssignmentsHandler queries.GetUnfinishedAssignmentsQueryHandler,
) *Server {
	return &Server{
		uowFactory:                      uowFactory,
		createVehicleHandler:            createVehicleHandler,
		updateVehicleHandler:            updateVehicleHandler,
		removeVehicleHandler:            removeVehicleHandler,
		createDriverHandler:             createDriverHandler,
		updateDriverHandler:             updateDriverHandler,
		removeDriverHandler:             removeDriverHandler,
		createAssignmentHandler:         createAssignmentHandler,
		updateAssignmentHandler:         updateAssignmentHandler,
		startAssignmentHandler:          startAssignmentHandler,
		completeAssignmentHandler:       completeAssignmentHandler,
		cancelAssignmentHandler:         cancelAssignmentHandler,
		matchAssignmentHandler:          matchAssignmentHandler,
		getAllVehiclesHandler:           getAllVehiclesHandler,
		getAllDriversHandler:            getAllDriversHandler,
		getUnfinishedAssignmentsHandler: getUnfinishedAssignmentsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/vehicles", s.GetVehicles)
	v1.POST("/vehicles", s.CreateVehicle)
	v1.GET("/vehicles/:id", s.GetVehicle)
	v1.PATCH("/vehicles/:id", s.UpdateVehicle)
	v1.DELETE("/vehicles/:id", s.DeleteVehicle)

	v1.GET("/drivers", s.GetDrivers)
	v1.POST("/drivers", s.CreateDriver)
	v1.GET("/drivers/:id", s.GetDriver)
	v1.PATCH("/drivers/:id", s.UpdateDriver)
	v1.DELETE("/drivers/:id", s.DeleteDriver)

	v1.GET("/assignments", s.GetAssignments)
	v1.POST("/assignments", s.CreateAssignment)
	v1.GET("/assignments/:id", s.GetAssignment)
	v1.PATCH("/assignments/:id", s.UpdateAssignment)
	v1.POST("/assignments/:id/start", s.StartAssignment)
	v1.POST("/assignments/:id/complete", s.CompleteAssignment)
	v1.POST("/assignments/:id/cancel", s.CancelAssignment)
	v1.POST("/assignments/:id/match", s.MatchAssignment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointPayload carries WGS84 coordinates in request and response bodies.
type GeoPointPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func geoPointFromPayload(p *GeoPointPayload) (*kernel.GeoPoint, error) {
	if p == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(p.Lat, p.Lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func geoPointToPayload(p *kernel.GeoPoint) *GeoPointPayload {
	if p == nil {
		return nil
	}
	return &GeoPointPayload{Lat: p.Latitude(), Lon: p.Longitude()}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// writeError maps application errors onto HTTP statuses: missing records to
// 404, state conflicts to 409, validation failures to 400, everything else
// to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFoundErr *errs.ObjectNotFoundError
	var transitionErr *errs.InvalidTransitionError
	var unavailableErr *errs.ResourceUnavailableError
	var requiredErr *errs.ValueIsRequiredError
	var invalidErr *errs.ValueIsInvalidError
	var rangeErr *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFoundErr),
		errors.Is(err, commands.ErrNoPendingAssignmentFound):
		status = http.StatusNotFound
	case errors.As(err, &transitionErr),
		errors.As(err, &unavailableErr),
		errors.Is(err, services.ErrNoMatchFound):
		status = http.StatusConflict
	case errors.As(err, &requiredErr),
		errors.As(err, &invalidErr),
		errors.As(err, &rangeErr),
		errors.Is(err, commands.ErrResourcesMustBeSuppliedTogether):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
