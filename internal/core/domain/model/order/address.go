package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
)

// Address is the shipping destination captured on order creation.
// It is an immutable value object; street and city are required, the phone
// number is optional contact information for the driver.
type Address struct {
	street string
	city   string
	phone  string

	isConstructed bool
}

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// NewAddress creates a validated shipping address.
func NewAddress(street, city, phone string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:        street,
		city:          city,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created through the constructor.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Phone returns the optional contact phone number.
func (a Address) Phone() string {
	return a.phone
}
