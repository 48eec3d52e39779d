package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrMarkPickedUpCommandIsNotConstructed is returned when the command was not
// built through NewMarkPickedUpCommand.
var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents a driver collecting an order from the
// restaurant.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record an order pickup by the
// (order, driver) pair.
func NewMarkPickedUpCommand(orderID, driverID kernel.UUID) (MarkPickedUpCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return MarkPickedUpCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the collected order's identifier.
func (c MarkPickedUpCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the collecting driver's identifier.
func (c MarkPickedUpCommand) DriverID() kernel.UUID {
	return c.driverID
}
