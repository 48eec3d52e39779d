package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddOrderItemCommandIsNotConstructed is returned when the command was not
// built through NewAddOrderItemCommand.
var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to attach a catalog food to an
// order. The food's sale price is snapshotted onto the new line and the order
// amount is recomputed in the same transaction.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	foodID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to attach a food to an order.
// Validates the identifiers and requires a positive quantity.
func NewAddOrderItemCommand(orderID, foodID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFoodID(foodID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FoodID returns the catalog food's identifier.
func (c AddOrderItemCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Quantity returns the number of units to order.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
