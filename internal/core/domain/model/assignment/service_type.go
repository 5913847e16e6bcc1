package assignment

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// ServiceType classifies what an assignment transports.
type ServiceType int

const (
	// ServiceUnknown represents an invalid or undefined service type.
	ServiceUnknown ServiceType = iota

	// ServiceStaff is a staff transfer.
	ServiceStaff

	// ServiceSupplies is a supply run.
	ServiceSupplies

	// ServicePatients is a patient transfer.
	ServicePatients

	// ServiceOther covers any other service.
	ServiceOther
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceUnknown:  "unknown",
		ServiceStaff:    "staff",
		ServiceSupplies: "supplies",
		ServicePatients: "patients",
		ServiceOther:    "other",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceStaff:    "staff",
		ServiceSupplies: "supplies",
		ServicePatients: "patients",
		ServiceOther:    "other",
	}
}

// Validate reports whether the service type is a member of the closed enumeration.
func (t ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the wire representation of the service type.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ServiceTypeFromString parses a service type received from an external caller.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for t, str := range getValidServiceTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause("service type",
		fmt.Errorf("%q is not a valid service type", s))
}
