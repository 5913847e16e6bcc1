// Package driverrepo implements the driver repository over GORM, handling
// the conversion between the driver aggregate and its table representation.
package driverrepo

import (
	"strings"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Qualified vehicle types are stored as a comma-joined list of
// type names rather than a join table; the set is small and only ever read
// back whole.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LicenseNumber  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	FirstName      string    `gorm:"type:varchar(255);not null"`
	LastName       string    `gorm:"type:varchar(255);not null"`
	Phone          *string   `gorm:"type:varchar(64)"`
	Email          *string   `gorm:"type:varchar(255)"`
	Active         bool      `gorm:"not null"`
	Status         int       `gorm:"type:int;not null"`
	QualifiedTypes string    `gorm:"type:text"`
	PositionLat    *float64  `gorm:"type:double precision"`
	PositionLon    *float64  `gorm:"type:double precision"`
	LicenseExpiry  time.Time `gorm:"not null"`
	RegisteredAt   time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:             d.ID().Bytes(),
		LicenseNumber:  d.LicenseNumber(),
		FirstName:      d.FirstName(),
		LastName:       d.LastName(),
		Phone:          d.Phone(),
		Email:          d.Email(),
		Active:         d.IsActive(),
		Status:         int(d.Status()),
		QualifiedTypes: qualifiedTypesToString(d.QualifiedTypes()),
		LicenseExpiry:  d.LicenseExpiry(),
		RegisteredAt:   d.RegisteredAt(),
	}

	if pos := d.Position(); pos != nil {
		lat, lon := pos.Latitude(), pos.Longitude()
		dto.PositionLat = &lat
		dto.PositionLon = &lon
	}

	return dto
}

// toDomain converts a database DTO back to a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	qualifiedTypes, err := qualifiedTypesFromString(dto.QualifiedTypes)
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.PositionLat != nil && dto.PositionLon != nil {
		p, posErr := kernel.NewGeoPoint(*dto.PositionLat, *dto.PositionLon)
		if posErr != nil {
			return nil, posErr
		}
		position = &p
	}

	return driver.RestoreDriver(
		id,
		dto.LicenseNumber,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		dto.Email,
		dto.Active,
		driver.Status(dto.Status),
		qualifiedTypes,
		position,
		dto.LicenseExpiry,
		dto.RegisteredAt,
	)
}

func qualifiedTypesToString(types []vehicle.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}

func qualifiedTypesFromString(s string) ([]vehicle.Type, error) {
	if s == "" {
		return nil, nil
	}

	names := strings.Split(s, ",")
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
