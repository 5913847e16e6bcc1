package driver

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the availability of a driver. Like the vehicle status it
// is a closed enumeration with no transition policy of its own; the lifecycle
// command handlers decide when a driver moves between statuses.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the driver can take new work.
	StatusAvailable

	// StatusEnRoute means the driver is servicing an active assignment.
	StatusEnRoute

	// StatusResting means the driver is on a rest period.
	StatusResting

	// StatusUnavailable means the driver is off duty.
	StatusUnavailable
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusAvailable:   "available",
		StatusEnRoute:     "en_route",
		StatusResting:     "resting",
		StatusUnavailable: "unavailable",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:   "available",
		StatusEnRoute:     "en_route",
		StatusResting:     "resting",
		StatusUnavailable: "unavailable",
	}
}

// Validate reports whether the status is one of the closed enumeration values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			fmt.Errorf("%d is not a valid driver status", s))
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

// StatusFromString parses a driver status received from an external caller.
func StatusFromString(str string) (Status, error) {
	for s, v := range getValidStatusStrings() {
		if v == str {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid driver status", str))
}
