// Package delivery provides the Delivery aggregate: the physical fulfillment
// record for an order once payment is confirmed, plus the append-only
// FailedDelivery log.
//
// Key business rules:
//   - Exactly one Delivery exists per order.
//   - Transitions only move forward: Pending → Assigned → PickedUp →
//     {Delivered, Failed}; Failed may also be reached directly from Assigned.
//   - Completion is marked exactly when the status reaches Delivered.
//   - A failure always produces one FailedDelivery log entry and the status
//     flip in the same transaction; the log and the status never diverge.
package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for delivery transitions.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through a constructor.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrAlreadyPickedUp is returned when marking pickup on a delivery that
	// is already picked up: an already-done signal, reported as a conflict.
	ErrAlreadyPickedUp = errs.NewConflictError("delivery already picked up")
	// ErrNotReadyForPickup is returned when marking pickup from any state
	// other than Assigned or PickedUp.
	ErrNotReadyForPickup = errs.NewInvalidStateError("delivery is not assigned to a driver yet")
	// ErrStatusConflict is returned when a delivered/failed transition is not
	// legal from the current status.
	ErrStatusConflict = errs.NewConflictError("delivery status does not allow this transition")
	// ErrSignatureIsRequired is returned when completing a delivery without a
	// signature payload.
	ErrSignatureIsRequired = errs.NewValueIsRequiredError("signature")
	// ErrAlreadyAssigned is returned when assigning a driver to a delivery
	// that already progressed past Pending.
	ErrAlreadyAssigned = errs.NewConflictError("delivery already has a driver")
)

// Delivery tracks the fulfillment of a single order. The driver reference is
// optional until an assignment is accepted; the completion flag becomes true
// exactly when the status reaches Delivered.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	driverID    *kernel.UUID
	status      Status
	signature   string
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	isCompleted bool

	guard guard.ConstructorGuard
}

// NewDelivery creates the fulfillment record for an order. Deliveries start
// Pending with no driver; they are created when payment is confirmed.
func NewDelivery(id, orderID kernel.UUID) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:      id,
		orderID: orderID,
		status:  Pending,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id, orderID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	signature string,
	pickedUpAt, deliveredAt *time.Time,
	isCompleted bool,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:          id,
		orderID:     orderID,
		driverID:    driverID,
		status:      status,
		signature:   signature,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		isCompleted: isCompleted,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the fulfilled order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the accepted driver's identifier, or nil before
// acceptance.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Status returns the current fulfillment status.
func (d *Delivery) Status() Status {
	return d.status
}

// Signature returns the proof-of-delivery payload captured on completion.
func (d *Delivery) Signature() string {
	return d.signature
}

// PickedUpAt returns when the driver collected the order, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the order reached the customer, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsCompleted reports whether the delivery reached Delivered.
func (d *Delivery) IsCompleted() bool {
	return d.isCompleted
}

// AssignDriver attaches the accepted driver and moves the delivery to
// Assigned. Valid only from Pending: if the delivery already progressed, the
// accepting transaction must fail atomically rather than reattach a driver.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if d.status != Pending {
		return ErrAlreadyAssigned
	}

	d.driverID = &driverID
	d.status = Assigned
	return nil
}

// MarkPickedUp records the driver collecting the order. Valid only from
// Assigned. From PickedUp itself the call reports ErrAlreadyPickedUp (the
// work is already done); from any earlier state it reports
// ErrNotReadyForPickup.
func (d *Delivery) MarkPickedUp() error {
	switch d.status {
	case PickedUp:
		return ErrAlreadyPickedUp
	case Assigned:
		now := time.Now().UTC()
		d.status = PickedUp
		d.pickedUpAt = &now
		return nil
	default:
		return ErrNotReadyForPickup
	}
}

// MarkDelivered completes the delivery with a proof-of-delivery signature.
// Valid only from PickedUp; the signature must be non-empty. Sets the
// completion flag together with the status, never separately.
func (d *Delivery) MarkDelivered(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	if d.status != PickedUp {
		return ErrStatusConflict
	}

	now := time.Now().UTC()
	d.status = Delivered
	d.signature = signature
	d.deliveredAt = &now
	d.isCompleted = true
	return nil
}

// MarkFailed records a delivery failure and returns the log entry to append.
// Valid from Assigned or PickedUp only; a delivered or already-failed
// delivery cannot fail again. The returned FailedDelivery must be persisted
// in the same transaction as the delivery itself so the append-only log and
// the status flip never diverge.
func (d *Delivery) MarkFailed(failureID kernel.UUID, reason string) (*FailedDelivery, error) {
	if d.status != Assigned && d.status != PickedUp {
		return nil, ErrStatusConflict
	}

	if d.driverID == nil {
		return nil, ErrNotReadyForPickup
	}

	entry, err := NewFailedDelivery(failureID, d.orderID, *d.driverID, reason, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	d.status = Failed
	return entry, nil
}

// BelongsTo reports whether the delivery is handled by the given driver.
func (d *Delivery) BelongsTo(driverID kernel.UUID) bool {
	return d.driverID != nil && d.driverID.IsEqual(driverID)
}
