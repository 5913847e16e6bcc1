// Package assignmentrepo implements the assignment repository over GORM,
// handling the conversion between the assignment aggregate and its table
// representation.
package assignmentrepo

import (
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Vehicle and driver references are plain nullable uuid columns,
// not foreign keys with cascade semantics: deleting a resource detaches it
// from its assignments in application code, never destroys the record.
type AssignmentDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID        *uuid.UUID `gorm:"type:uuid;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	ServiceType      int        `gorm:"type:int;not null"`
	OriginDesc       string     `gorm:"type:text"`
	DestinationDesc  string     `gorm:"type:text;not null"`
	OriginLat        *float64   `gorm:"type:double precision"`
	OriginLon        *float64   `gorm:"type:double precision"`
	DestinationLat   *float64   `gorm:"type:double precision"`
	DestinationLon   *float64   `gorm:"type:double precision"`
	RequestedStart   time.Time  `gorm:"not null"`
	ExpectedEnd      *time.Time
	ActualEnd        *time.Time
	Status           int    `gorm:"type:int;not null;index"`
	ReqPassengers    int    `gorm:"type:int;not null"`
	ReqCargoKG       *int   `gorm:"column:req_cargo_kg;type:int"`
	ReqPreferredType *int   `gorm:"type:int"`
	ReqSpecial       string `gorm:"type:text"`
	RequestedAt      time.Time `gorm:"not null"`
	Notes            string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	req := a.Requirements()

	dto := AssignmentDTO{
		ID:              a.ID().Bytes(),
		ServiceType:     int(a.ServiceType()),
		OriginDesc:      a.OriginDescription(),
		DestinationDesc: a.DestinationDescription(),
		RequestedStart:  a.RequestedStart(),
		ExpectedEnd:     a.ExpectedEnd(),
		ActualEnd:       a.ActualEnd(),
		Status:          int(a.Status()),
		ReqPassengers:   req.Passengers(),
		ReqCargoKG:      req.CargoKG(),
		ReqSpecial:      req.Special(),
		RequestedAt:     a.RequestedAt(),
		Notes:           a.Notes(),
	}

	if vid := a.VehicleID(); vid != nil {
		raw := vid.Bytes()
		dto.VehicleID = &raw
	}
	if did := a.DriverID(); did != nil {
		raw := did.Bytes()
		dto.DriverID = &raw
	}

	if origin := a.Origin(); origin != nil {
		lat, lon := origin.Latitude(), origin.Longitude()
		dto.OriginLat = &lat
		dto.OriginLon = &lon
	}
	if dest := a.Destination(); dest != nil {
		lat, lon := dest.Latitude(), dest.Longitude()
		dto.DestinationLat = &lat
		dto.DestinationLon = &lon
	}

	if pt := req.PreferredType(); pt != nil {
		raw := int(*pt)
		dto.ReqPreferredType = &raw
	}

	return dto
}

// toDomain converts a database DTO back to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := optionalUUID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	origin, err := optionalGeoPoint(dto.OriginLat, dto.OriginLon)
	if err != nil {
		return nil, err
	}
	destination, err := optionalGeoPoint(dto.DestinationLat, dto.DestinationLon)
	if err != nil {
		return nil, err
	}

	var preferredType *vehicle.Type
	if dto.ReqPreferredType != nil {
		pt := vehicle.Type(*dto.ReqPreferredType)
		preferredType = &pt
	}

	requirements, err := assignment.NewRequirements(dto.ReqPassengers, dto.ReqCargoKG, preferredType, dto.ReqSpecial)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		vehicleID,
		driverID,
		assignment.ServiceType(dto.ServiceType),
		dto.OriginDesc,
		dto.DestinationDesc,
		origin,
		destination,
		dto.RequestedStart,
		dto.ExpectedEnd,
		dto.ActualEnd,
		assignment.Status(dto.Status),
		requirements,
		dto.RequestedAt,
		dto.Notes,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalGeoPoint(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
