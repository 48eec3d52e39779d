package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// maxItemQuantity caps a single order line.
const maxItemQuantity = 100

// Item is an order line referencing a catalog food. The price is a snapshot
// copied from the food's sale price at creation time and is immutable: later
// catalog price changes never touch existing items. The subtotal is computed
// once from the snapshot price and the quantity.
type Item struct {
	id       kernel.UUID
	orderID  kernel.UUID
	foodID   kernel.UUID
	name     string
	price    kernel.Money
	quantity int
	subtotal kernel.Money

	isConstructed bool
}

// NewItem creates a new order line with a snapshot price.
//
// Parameters:
//   - id: unique identifier of the line
//   - orderID: owning order
//   - foodID: referenced catalog food
//   - name: food name captured for display
//   - price: snapshot of the food's sale price at creation time
//   - quantity: number of units (must be at least 1)
//
// The subtotal is derived as price × quantity and never recomputed from the
// live catalog.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	foodID kernel.UUID,
	name string,
	price kernel.Money,
	quantity int,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		foodID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	if quantity < 1 || quantity > maxItemQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	subtotal, err := price.MultiplyBy(quantity)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		orderID:       orderID,
		foodID:        foodID,
		name:          name,
		price:         price,
		quantity:      quantity,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item from persistent storage without
// recomputing the subtotal, preserving the snapshot exactly as stored.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	foodID kernel.UUID,
	name string,
	price kernel.Money,
	quantity int,
	subtotal kernel.Money,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		foodID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		orderID:       orderID,
		foodID:        foodID,
		name:          name,
		price:         price,
		quantity:      quantity,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// FoodID returns the referenced catalog food's identifier.
func (i *Item) FoodID() kernel.UUID {
	return i.foodID
}

// Name returns the food name captured at creation.
func (i *Item) Name() string {
	return i.name
}

// Price returns the immutable snapshot price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price × quantity as computed at creation.
func (i *Item) Subtotal() kernel.Money {
	return i.subtotal
}
