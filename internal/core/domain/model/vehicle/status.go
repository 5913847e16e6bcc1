package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the availability of a vehicle.
//
// The enumeration is closed; free-text statuses from external callers are
// rejected via StatusFromString. Transition policy does not live here; the
// lifecycle command handlers decide when a vehicle may move between statuses,
// using the aggregate methods on Vehicle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the vehicle can be claimed for new work.
	StatusAvailable

	// StatusInUse means the vehicle is servicing an active assignment.
	StatusInUse

	// StatusMaintenance means the vehicle is out of service.
	StatusMaintenance

	// StatusReserved means the vehicle is held for a scheduled assignment
	// but not yet on the road.
	StatusReserved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusAvailable:   "available",
		StatusInUse:       "in_use",
		StatusMaintenance: "maintenance",
		StatusReserved:    "reserved",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:   "available",
		StatusInUse:       "in_use",
		StatusMaintenance: "maintenance",
		StatusReserved:    "reserved",
	}
}

// Validate reports whether the status is one of the closed enumeration values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanBeClaimed reports whether a vehicle in this status may be claimed for
// new work. Reserved vehicles are claimable the same as available ones;
// reservations are not bound to a specific assignment.
func (s Status) CanBeClaimed() bool {
	return s == StatusAvailable || s == StatusReserved
}

// StatusFromString parses a vehicle status received from an external caller.
func StatusFromString(str string) (Status, error) {
	for s, v := range getValidStatusStrings() {
		if v == str {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle status",
		fmt.Errorf("%q is not a valid vehicle status", str))
}
