package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrAcceptAssignmentCommandIsNotConstructed is returned when the command was
// not built through NewAcceptAssignmentCommand.
var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand represents a driver taking an offered order.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates a command for a driver to accept an
// assignment identified by the (order, driver) pair.
func NewAcceptAssignmentCommand(orderID, driverID kernel.UUID) (AcceptAssignmentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return AcceptAssignmentCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// OrderID returns the offered order's identifier.
func (c AcceptAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the accepting driver's identifier.
func (c AcceptAssignmentCommand) DriverID() kernel.UUID {
	return c.driverID
}
