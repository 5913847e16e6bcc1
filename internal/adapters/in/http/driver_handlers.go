package http

import (
	"net/http"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// CreateDriverRequest is the payload for POST /api/v1/drivers.
type CreateDriverRequest struct {
	LicenseNumber  string    `json:"license_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	LicenseExpiry  time.Time `json:"license_expiry"`
	QualifiedTypes []string  `json:"qualified_types"`
}

// UpdateDriverRequest is the payload for PATCH /api/v1/drivers/:id.
// Absent fields are left untouched.
type UpdateDriverRequest struct {
	Status         *string          `json:"status,omitempty"`
	Active         *bool            `json:"active,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Position       *GeoPointPayload `json:"position,omitempty"`
	QualifiedTypes []string         `json:"qualified_types,omitempty"`
}

// DriverResponse is the representation of a single driver.
type DriverResponse struct {
	ID             string           `json:"id"`
	LicenseNumber  string           `json:"license_number"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Phone          *string          `json:"phone,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Active         bool             `json:"active"`
	Status         string           `json:"status"`
	QualifiedTypes []string         `json:"qualified_types"`
	Position       *GeoPointPayload `json:"position,omitempty"`
	LicenseExpiry  time.Time        `json:"license_expiry"`
	RegisteredAt   time.Time        `json:"registered_at"`
}

// DriverListItem is the read-model representation used by the list endpoint.
type DriverListItem struct {
	ID             string    `json:"id"`
	LicenseNumber  string    `json:"license_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Active         bool      `json:"active"`
	Status         string    `json:"status"`
	QualifiedTypes string    `json:"qualified_types"`
	LicenseExpiry  time.Time `json:"license_expiry"`
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverListItem, len(drivers))
	for i, d := range drivers {
		response[i] = DriverListItem{
			ID:             d.ID.String(),
			LicenseNumber:  d.LicenseNumber,
			FirstName:      d.FirstName,
			LastName:       d.LastName,
			Active:         d.Active,
			Status:         d.Status,
			QualifiedTypes: d.QualifiedTypes,
			LicenseExpiry:  d.LicenseExpiry,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	d, err := s.uowFactory.Create().DriverRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverToResponse(d))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	qualifiedTypes, err := parseVehicleTypes(req.QualifiedTypes)
	if err != nil {
		return writeError(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.LicenseNumber, req.FirstName, req.LastName,
		req.Phone, req.Email, req.LicenseExpiry, qualifiedTypes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": driverID.String()})
}

// UpdateDriver handles PATCH /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req UpdateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *driver.Status
	if req.Status != nil {
		parsed, statusErr := driver.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	position, err := geoPointFromPayload(req.Position)
	if err != nil {
		return writeError(ctx, err)
	}

	var qualifiedTypes []vehicle.Type
	if req.QualifiedTypes != nil {
		qualifiedTypes, err = parseVehicleTypes(req.QualifiedTypes)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateDriverCommand(id, status, req.Active,
		req.Phone, req.Email, position, qualifiedTypes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewRemoveDriverCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseVehicleTypes(names []string) ([]vehicle.Type, error) {
	types := make([]vehicle.Type, 0, len(names))
	for _, name := range names {
		t, err := vehicle.TypeFromString(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func driverToResponse(d *driver.Driver) DriverResponse {
	qualified := d.QualifiedTypes()
	typeNames := make([]string, len(qualified))
	for i, t := range qualified {
		typeNames[i] = t.String()
	}

	return DriverResponse{
		ID:             d.ID().String(),
		LicenseNumber:  d.LicenseNumber(),
		FirstName:      d.FirstName(),
		LastName:       d.LastName(),
		Phone:          d.Phone(),
		Email:          d.Email(),
		Active:         d.IsActive(),
		Status:         d.Status().String(),
		QualifiedTypes: typeNames,
		Position:       geoPointToPayload(d.Position()),
		LicenseExpiry:  d.LicenseExpiry(),
		RegisteredAt:   d.RegisteredAt(),
	}
}
