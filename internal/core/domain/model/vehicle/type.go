package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Type classifies a vehicle by its primary use. It is a closed enumeration;
// unknown values are rejected at the boundary via TypeFromString.
type Type int

const (
	// TypeUnknown represents an invalid or undefined vehicle type.
	TypeUnknown Type = iota

	// TypeStaffCar carries staff members.
	TypeStaffCar

	// TypeSupplyVan carries supplies.
	TypeSupplyVan

	// TypeAmbulance carries patients.
	TypeAmbulance

	// TypePassengerVan carries larger passenger groups.
	TypePassengerVan

	// TypeCargoTruck carries light cargo.
	TypeCargoTruck

	// TypeOther covers vehicles outside the main categories.
	TypeOther
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:      "unknown",
		TypeStaffCar:     "staff_car",
		TypeSupplyVan:    "supply_van",
		TypeAmbulance:    "ambulance",
		TypePassengerVan: "passenger_van",
		TypeCargoTruck:   "cargo_truck",
		TypeOther:        "other",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeStaffCar:     "staff_car",
		TypeSupplyVan:    "supply_van",
		TypeAmbulance:    "ambulance",
		TypePassengerVan: "passenger_van",
		TypeCargoTruck:   "cargo_truck",
		TypeOther:        "other",
	}
}

// Validate reports whether the type is one of the closed enumeration values.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

// String returns the wire representation of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TypeFromString parses a vehicle type received from an external caller,
// rejecting anything outside the closed enumeration.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type",
		fmt.Errorf("%q is not a valid vehicle type", s))
}
