package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrRejectAssignmentCommandIsNotConstructed is returned when the command was
// not built through NewRejectAssignmentCommand.
var ErrRejectAssignmentCommandIsNotConstructed = errors.New(
	"RejectAssignmentCommand must be created via NewRejectAssignmentCommand constructor",
)

// RejectAssignmentCommand represents a driver declining an offered order.
type RejectAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectAssignmentCommand creates a command for a driver to reject an
// assignment identified by the (order, driver) pair.
func NewRejectAssignmentCommand(orderID, driverID kernel.UUID) (RejectAssignmentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return RejectAssignmentCommand{}, err
	}

	return RejectAssignmentCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectAssignmentCommandIsNotConstructed)
}

// OrderID returns the offered order's identifier.
func (c RejectAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the rejecting driver's identifier.
func (c RejectAssignmentCommand) DriverID() kernel.UUID {
	return c.driverID
}
