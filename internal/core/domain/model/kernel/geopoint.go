package kernel

import (
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// WGS84 coordinate bounds.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object representing a last-known position or a trip
// endpoint as WGS84 latitude/longitude. Positions are externally reported;
// the system stores them but makes no accuracy or freshness guarantees.
//
// The zero value is invalid; construct with NewGeoPoint. GeoPoint is
// immutable and safe for concurrent use.
type GeoPoint struct {
	lat float64
	lon float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, rejecting coordinates outside the WGS84
// domain with a ValueIsOutOfRangeError naming the offending component.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < LatitudeMin || lat > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	if lon < LongitudeMin || lon > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		lat:   lat,
		lon:   lon,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lon
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// String implements fmt.Stringer for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.lat, p.lon)
}

// Validate returns ErrGeoPointIsNotConstructed for zero-value points.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
