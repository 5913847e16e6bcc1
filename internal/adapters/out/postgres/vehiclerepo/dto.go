// Package vehiclerepo implements the vehicle repository over GORM, handling
// the conversion between the vehicle aggregate and its table representation.
package vehiclerepo

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. Enum fields are stored as their integer values; the position is
// flattened into nullable coordinate columns because a vehicle may never have
// reported one.
type VehicleDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Plate             string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Make              string     `gorm:"type:varchar(255);not null"`
	Model             string     `gorm:"type:varchar(255);not null"`
	VehicleType       int        `gorm:"type:int;not null"`
	PassengerCapacity int        `gorm:"type:int;not null"`
	CargoCapacityKG   *int       `gorm:"column:cargo_capacity_kg;type:int"`
	Features          string     `gorm:"type:text"`
	PositionLat       *float64   `gorm:"type:double precision"`
	PositionLon       *float64   `gorm:"type:double precision"`
	Status            int        `gorm:"type:int;not null"`
	PreferredDriverID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	dto := VehicleDTO{
		ID:                v.ID().Bytes(),
		Plate:             v.Plate(),
		Make:              v.Make(),
		Model:             v.Model(),
		VehicleType:       int(v.Type()),
		PassengerCapacity: v.PassengerCapacity(),
		CargoCapacityKG:   v.CargoCapacityKG(),
		Features:          v.Features(),
		Status:            int(v.Status()),
	}

	if pos := v.Position(); pos != nil {
		lat, lon := pos.Latitude(), pos.Longitude()
		dto.PositionLat = &lat
		dto.PositionLon = &lon
	}

	if pd := v.PreferredDriverID(); pd != nil {
		raw := pd.Bytes()
		dto.PreferredDriverID = &raw
	}

	return dto
}

// toDomain converts a database DTO back to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	var preferredDriverID *kernel.UUID
	if dto.PreferredDriverID != nil {
		pd, pdErr := kernel.UUIDFromBytes((*dto.PreferredDriverID)[:])
		if pdErr != nil {
			return nil, pdErr
		}
		preferredDriverID = &pd
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Plate,
		dto.Make,
		dto.Model,
		vehicle.Type(dto.VehicleType),
		dto.PassengerCapacity,
		dto.CargoCapacityKG,
		dto.Features,
		position,
		vehicle.Status(dto.Status),
		preferredDriverID,
	)
}
