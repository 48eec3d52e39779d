// Package driver provides the Driver entity considered by the assignment
// selector. A driver is eligible for new assignments only while available,
// verified, and active at the same time.
package driver

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through a constructor.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver represents a delivery driver.
type Driver struct {
	id         kernel.UUID
	name       string
	isVerified bool
	isActive   bool
	available  bool

	guard guard.ConstructorGuard
}

// NewDriver creates a driver. Freshly registered drivers are available but
// unverified and inactive, so they are not yet eligible for assignments.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Driver{
		id:        id,
		name:      name,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, isVerified, isActive, available bool) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:         id,
		name:       name,
		isVerified: isVerified,
		isActive:   isActive,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsVerified reports whether the driver passed verification.
func (d *Driver) IsVerified() bool {
	return d.isVerified
}

// IsActive reports whether the driver is currently on shift.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// IsAvailable reports the soft-delete flag.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// IsEligible reports whether the driver can receive new assignments:
// available, verified, and active simultaneously.
func (d *Driver) IsEligible() bool {
	return d.available && d.isVerified && d.isActive
}

// Verify marks the driver as verified.
func (d *Driver) Verify() {
	d.isVerified = true
}

// SetActive flips the on-shift flag.
func (d *Driver) SetActive(active bool) {
	d.isActive = active
}
