package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// defaultPoints is the initial durability counter of a freshly created order.
	defaultPoints = 100

	// availabilityThreshold is the points value at or below which a reported
	// order is soft-removed from listings.
	availabilityThreshold = 5
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrPaymentAlreadyConfirmed is returned when confirming payment on an
	// order that is already paid.
	ErrPaymentAlreadyConfirmed = errs.NewConflictError("payment already confirmed")
	// ErrItemBelongsToAnotherOrder is returned when attaching an item whose
	// order reference does not match the aggregate.
	ErrItemBelongsToAnotherOrder = errs.NewValueIsInvalidError("item order id")
)

// Order is the aggregate root of the fulfillment lifecycle. It owns its line
// items, a derived amount, a payment flag, and the durability counter used by
// the report throttle.
//
// Invariants:
//   - amount always equals the sum of item subtotals; it is recomputed by a
//     full re-scan on every item append, never incrementally
//   - the transaction code is derived from the identity and never changes
//   - status transitions follow the NotProcessed → Processed → Shipping →
//     Delivered workflow, with cancellation allowed before shipping
//   - orders are never hard-deleted; exhausting the durability counter flips
//     the availability flag instead
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	address     Address
	transaction string
	amount      kernel.Money
	status      Status
	isPaid      bool
	points      int
	available   bool
	items       []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in NotProcessed status with a zero amount,
// full durability points, and a transaction code derived from the identity.
func NewOrder(id kernel.UUID, customerID kernel.UUID, address Address) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		address.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		customerID:  customerID,
		address:     address,
		transaction: TransactionFromID(id),
		amount:      kernel.Zero(),
		status:      NotProcessed,
		points:      defaultPoints,
		available:   true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the complete stored state, including items,
// and does not re-derive the transaction code or the amount.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address Address,
	transaction string,
	amount kernel.Money,
	status Status,
	isPaid bool,
	points int,
	available bool,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		address.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		customerID:  customerID,
		address:     address,
		transaction: transaction,
		amount:      amount,
		status:      status,
		isPaid:      isPaid,
		points:      points,
		available:   available,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// TransactionFromID derives the unique transaction code of an order from its
// primary key. The code is stable for the lifetime of the order.
func TransactionFromID(id kernel.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("TRX-%s", strings.ToUpper(compact[:12]))
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the shipping address.
func (o *Order) Address() Address {
	return o.address
}

// Transaction returns the derived transaction code.
func (o *Order) Transaction() string {
	return o.transaction
}

// Amount returns the derived order amount.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has been confirmed.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// Points returns the durability counter used by the report throttle.
func (o *Order) Points() int {
	return o.points
}

// IsAvailable reports the soft-delete flag.
func (o *Order) IsAvailable() bool {
	return o.available
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// AddItem attaches a line to the order and recomputes the amount.
// The item must reference this order. Amount recomputation is a full re-scan
// of all items so repeated appends cannot drift.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if !item.OrderID().IsEqual(o.id) {
		return ErrItemBelongsToAnotherOrder
	}

	o.items = append(o.items, item)
	if err := o.RecomputeAmount(); err != nil {
		o.items = o.items[:len(o.items)-1]
		return err
	}
	return nil
}

// RecomputeAmount re-derives the order amount as the sum of all item
// subtotals. Called after every item append; callers persisting the order
// must do so in the same transaction as the item write. An amount exceeding
// the int64 range leaves the order unchanged.
func (o *Order) RecomputeAmount() error {
	total := kernel.Zero()
	for _, item := range o.items {
		var err error
		if total, err = total.Add(item.Subtotal()); err != nil {
			return err
		}
	}
	o.amount = total
	return nil
}

// ConfirmPayment marks the order as paid and moves it to Processed.
// Confirming an already-paid order is a conflict, not a no-op: the payment
// gateway hand-off must be applied exactly once.
func (o *Order) ConfirmPayment() error {
	if o.isPaid {
		return ErrPaymentAlreadyConfirmed
	}

	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isPaid = true
	return nil
}

// StartShipping moves the order to Shipping when its delivery is picked up.
func (o *Order) StartShipping() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered moves the order to Delivered when its delivery completes.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order before shipping.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyReportPenalty decrements the durability counter by one and flips the
// availability flag off once the counter falls to the threshold. Called
// exactly once per successful report, in the same transaction as the report
// insert.
func (o *Order) ApplyReportPenalty() {
	o.points--
	if o.points <= availabilityThreshold {
		o.available = false
	}
}
