package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMarkFailedCommandIsNotConstructed is returned when the command was not
// built through NewMarkFailedCommand.
var ErrMarkFailedCommandIsNotConstructed = errors.New(
	"MarkFailedCommand must be created via NewMarkFailedCommand constructor",
)

// MarkFailedCommand represents a delivery failure report from a driver.
type MarkFailedCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewMarkFailedCommand creates a command to record a delivery failure.
// The failure reason is required.
func NewMarkFailedCommand(orderID, driverID kernel.UUID, reason string) (MarkFailedCommand, error) {
	cmd := MarkFailedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setReason(reason),
	); err != nil {
		return MarkFailedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkFailedCommandIsNotConstructed)
}

// OrderID returns the failed order's identifier.
func (c MarkFailedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the reporting driver's identifier.
func (c MarkFailedCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns the failure description.
func (c MarkFailedCommand) Reason() string {
	return c.reason
}

func (c *MarkFailedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkFailedCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *MarkFailedCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
