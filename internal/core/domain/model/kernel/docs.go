// Package kernel provides shared value objects used across the domain model.
//
// It contains:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - GeoPoint: WGS84 latitude/longitude position
//
// Value objects in this package are immutable, validated at construction and
// carry a Validate method so persistence adapters can verify reconstructed
// state before use.
package kernel
