package driver

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrLicenseNumberIsRequired is returned when creating a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
	// ErrFirstNameIsRequired is returned when creating a driver without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrLastNameIsRequired is returned when creating a driver without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")
	// ErrLicenseExpiryIsRequired is returned when creating a driver without a license expiry date.
	ErrLicenseExpiryIsRequired = errs.NewValueIsRequiredError("license expiry")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the aggregate root for a fleet driver. It owns the driver's
// identity (globally unique license number), contact information, the active
// flag, availability status, the set of vehicle types the driver is qualified
// to operate, and the license expiry date.
//
// A driver with active=false must never be selected for new work; MarkEnRoute
// enforces this, and the matching engine filters inactive drivers out.
type Driver struct {
	id             kernel.UUID
	licenseNumber  string
	firstName      string
	lastName       string
	phone          *string
	email          *string
	active         bool
	status         Status
	qualifiedTypes []vehicle.Type
	position       *kernel.GeoPoint
	licenseExpiry  time.Time
	registeredAt   time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates an active driver in the available status, registered at
// the current server clock. License number, names and expiry are required;
// every qualified type must be a member of the vehicle type enumeration.
func NewDriver(
	id kernel.UUID,
	licenseNumber string,
	firstName string,
	lastName string,
	licenseExpiry time.Time,
	qualifiedTypes []vehicle.Type,
) (*Driver, error) {
	d := &Driver{
		active:       true,
		status:       StatusAvailable,
		registeredAt: time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setLicenseNumber(licenseNumber),
		d.setFirstName(firstName),
		d.setLastName(lastName),
		d.setLicenseExpiry(licenseExpiry),
		d.setQualifiedTypes(qualifiedTypes),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistent storage, preserving its
// status, active flag, contact details, position and registration timestamp.
func RestoreDriver(
	id kernel.UUID,
	licenseNumber string,
	firstName string,
	lastName string,
	phone *string,
	email *string,
	active bool,
	status Status,
	qualifiedTypes []vehicle.Type,
	position *kernel.GeoPoint,
	licenseExpiry time.Time,
	registeredAt time.Time,
) (*Driver, error) {
	d, err := NewDriver(id, licenseNumber, firstName, lastName, licenseExpiry, qualifiedTypes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	d.active = active
	d.phone = phone
	d.email = email
	d.registeredAt = registeredAt

	if position != nil {
		if err = position.Validate(); err != nil {
			return nil, err
		}
		d.position = position
	}

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// LicenseNumber returns the globally unique license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// Phone returns the optional phone number.
func (d *Driver) Phone() *string {
	return d.phone
}

// Email returns the optional email address.
func (d *Driver) Email() *string {
	return d.email
}

// IsActive reports whether the driver is enabled in the system.
func (d *Driver) IsActive() bool {
	return d.active
}

// Status returns the current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// QualifiedTypes returns a copy of the vehicle types the driver may operate.
func (d *Driver) QualifiedTypes() []vehicle.Type {
	types := make([]vehicle.Type, len(d.qualifiedTypes))
	copy(types, d.qualifiedTypes)
	return types
}

// Position returns the last-known position, or nil when never reported.
func (d *Driver) Position() *kernel.GeoPoint {
	return d.position
}

// LicenseExpiry returns the license expiry date.
func (d *Driver) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// RegisteredAt returns the registration timestamp.
func (d *Driver) RegisteredAt() time.Time {
	return d.registeredAt
}

// SetContact records optional contact details.
func (d *Driver) SetContact(phone, email *string) {
	d.phone = phone
	d.email = email
}

// SetPosition records a newly reported position.
func (d *Driver) SetPosition(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	d.position = &p
	return nil
}

// SetStatus overrides the availability status. Administrative entry point;
// lifecycle transitions use MarkEnRoute and Release.
func (d *Driver) SetStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.status = s
	return nil
}

// SetQualifiedTypes replaces the set of vehicle types the driver may operate.
func (d *Driver) SetQualifiedTypes(types []vehicle.Type) error {
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	d.qualifiedTypes = types
	return nil
}

// Activate enables the driver for new work.
func (d *Driver) Activate() {
	d.active = true
}

// Deactivate disables the driver. Deactivation does not interrupt work in
// progress; it only prevents new selections.
func (d *Driver) Deactivate() {
	d.active = false
}

// IsLicenseExpired reports whether the license has expired as of now.
func (d *Driver) IsLicenseExpired(now time.Time) bool {
	return d.licenseExpiry.Before(now)
}

// IsQualifiedFor reports whether the driver may operate the given vehicle type.
func (d *Driver) IsQualifiedFor(t vehicle.Type) bool {
	for _, q := range d.qualifiedTypes {
		if q == t {
			return true
		}
	}
	return false
}

// CanTakeWork reports whether the driver may be selected for a new
// assignment: enabled and currently available.
func (d *Driver) CanTakeWork() bool {
	return d.active && d.status == StatusAvailable
}

// MarkEnRoute puts the driver on the road for an active assignment. Fails
// with ResourceUnavailable naming the unmet precondition when the driver is
// not active or not available.
func (d *Driver) MarkEnRoute() error {
	if !d.active {
		return errs.NewResourceUnavailableErrorWithCause("driver", d.licenseNumber, d.status.String(),
			errors.New("driver is not active"))
	}
	if d.status != StatusAvailable {
		return errs.NewResourceUnavailableError("driver", d.licenseNumber, d.status.String())
	}
	d.status = StatusEnRoute
	return nil
}

// Release returns an en-route driver to the available status. Releasing a
// driver in any other status (resting, unavailable) is a no-op.
func (d *Driver) Release() {
	if d.status == StatusEnRoute {
		d.status = StatusAvailable
	}
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	d.firstName = firstName
	return nil
}

func (d *Driver) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	d.lastName = lastName
	return nil
}

func (d *Driver) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return ErrLicenseExpiryIsRequired
	}
	d.licenseExpiry = expiry
	return nil
}

func (d *Driver) setQualifiedTypes(types []vehicle.Type) error {
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	d.qualifiedTypes = make([]vehicle.Type, len(types))
	copy(d.qualifiedTypes, types)
	return nil
}
