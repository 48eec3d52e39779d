package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrFailureIsNotConstructed is returned when a FailedDelivery was not
// created through its constructor.
var ErrFailureIsNotConstructed = errors.New("FailedDelivery must be created via NewFailedDelivery constructor")

// FailedDelivery is an append-only log entry recorded when a delivery
// transitions to Failed. Multiple entries may exist per order/driver pair
// over time; entries are historical records, never mutated or deleted.
type FailedDelivery struct {
	id       kernel.UUID
	orderID  kernel.UUID
	driverID kernel.UUID
	reason   string
	failedAt time.Time

	isConstructed bool
}

// NewFailedDelivery records a delivery failure. The reason is required.
func NewFailedDelivery(
	id, orderID, driverID kernel.UUID, reason string, failedAt time.Time,
) (*FailedDelivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &FailedDelivery{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		reason:        reason,
		failedAt:      failedAt,
		isConstructed: true,
	}, nil
}

// RestoreFailedDelivery reconstructs a log entry from persistent storage.
func RestoreFailedDelivery(
	id, orderID, driverID kernel.UUID, reason string, failedAt time.Time,
) (*FailedDelivery, error) {
	return &FailedDelivery{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		reason:        reason,
		failedAt:      failedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (f *FailedDelivery) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFailureIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (f *FailedDelivery) ID() kernel.UUID {
	return f.id
}

// OrderID returns the failed order's identifier.
func (f *FailedDelivery) OrderID() kernel.UUID {
	return f.orderID
}

// DriverID returns the driver who reported the failure.
func (f *FailedDelivery) DriverID() kernel.UUID {
	return f.driverID
}

// Reason returns the reported failure reason.
func (f *FailedDelivery) Reason() string {
	return f.reason
}

// FailedAt returns when the failure was recorded.
func (f *FailedDelivery) FailedAt() time.Time {
	return f.failedAt
}
