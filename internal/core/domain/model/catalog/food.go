// Package catalog provides the Food entity referenced by order lines.
// Only the pieces the fulfillment core needs are modeled: identity, name,
// pricing, and the availability flag. An order line snapshots the food's sale
// price at creation; a food without a sale price can never appear on an order.
package catalog

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrFoodIsNotConstructed is returned when a Food instance was not created
	// through a constructor.
	ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")
	// ErrSalePriceIsMissing is returned when snapshotting the price of a food
	// that has no sale price set.
	ErrSalePriceIsMissing = errs.NewValueIsRequiredError("sale price")
)

// Food is a catalog item offered by a restaurant.
type Food struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	salePrice *kernel.Money
	available bool

	guard guard.ConstructorGuard
}

// NewFood creates a catalog item. The sale price is optional; foods without
// one are browsable but cannot be ordered.
func NewFood(id kernel.UUID, name string, price kernel.Money, salePrice *kernel.Money) (*Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Food{
		id:        id,
		name:      name,
		price:     price,
		salePrice: salePrice,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreFood reconstructs a Food from persistent storage.
func RestoreFood(
	id kernel.UUID, name string, price kernel.Money, salePrice *kernel.Money, available bool,
) (*Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Food{
		id:        id,
		name:      name,
		price:     price,
		salePrice: salePrice,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Food was created through a constructor.
func (f *Food) Validate() error {
	if f == nil {
		return ErrFoodIsNotConstructed
	}
	return f.guard.Validate(ErrFoodIsNotConstructed)
}

// ID returns the food's unique identifier.
func (f *Food) ID() kernel.UUID {
	return f.id
}

// Name returns the food's display name.
func (f *Food) Name() string {
	return f.name
}

// Price returns the list price.
func (f *Food) Price() kernel.Money {
	return f.price
}

// IsAvailable reports the soft-delete flag.
func (f *Food) IsAvailable() bool {
	return f.available
}

// SalePrice returns the current sale price for snapshotting onto an order
// line. Returns ErrSalePriceIsMissing when no sale price is set: an order
// item can never be created with an undefined price.
func (f *Food) SalePrice() (kernel.Money, error) {
	if f.salePrice == nil {
		return kernel.Money{}, ErrSalePriceIsMissing
	}
	return *f.salePrice, nil
}

// SetSalePrice updates the sale price. Existing order lines keep their
// snapshot; only future lines observe the change.
func (f *Food) SetSalePrice(price kernel.Money) {
	f.salePrice = &price
}
