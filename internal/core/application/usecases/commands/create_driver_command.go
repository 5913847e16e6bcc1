package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
// Carries identity, contact details, license data and the vehicle types
// the driver is qualified to operate.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	licenseNumber  string
	firstName      string
	lastName       string
	phone          *string
	email          *string
	licenseExpiry  time.Time
	qualifiedTypes []vehicle.Type

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates identity, license number, names, the expiry date and each
// qualified vehicle type.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	licenseNumber string,
	firstName string,
	lastName string,
	phone *string,
	email *string,
	licenseExpiry time.Time,
	qualifiedTypes []vehicle.Type,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setNames(firstName, lastName),
		cmd.setLicenseExpiry(licenseExpiry),
		cmd.setQualifiedTypes(qualifiedTypes),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// LicenseNumber returns the unique license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// FirstName returns the driver's first name.
func (c CreateDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the driver's last name.
func (c CreateDriverCommand) LastName() string {
	return c.lastName
}

// Phone returns the optional contact phone.
func (c CreateDriverCommand) Phone() *string {
	return c.phone
}

// Email returns the optional contact email.
func (c CreateDriverCommand) Email() *string {
	return c.email
}

// LicenseExpiry returns the license expiry date.
func (c CreateDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

// QualifiedTypes returns the vehicle types the driver may operate.
func (c CreateDriverCommand) QualifiedTypes() []vehicle.Type {
	return c.qualifiedTypes
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("license_number")
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *CreateDriverCommand) setNames(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first_name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last_name")
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *CreateDriverCommand) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("license_expiry")
	}

	c.licenseExpiry = expiry
	return nil
}

func (c *CreateDriverCommand) setQualifiedTypes(types []vehicle.Type) error {
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	c.qualifiedTypes = types
	return nil
}
