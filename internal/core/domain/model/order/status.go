package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	NotProcessed ──> Processed ──> Shipping ──> Delivered
//	      │              │
//	      └──────────────┴──> Cancelled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotProcessed is the initial status of a freshly created order.
	NotProcessed

	// Processed indicates payment has been confirmed and the order is
	// waiting for a driver.
	Processed

	// Shipping indicates a driver has picked the order up.
	Shipping

	// Delivered indicates the order reached the customer.
	// This is a final state.
	Delivered

	// Cancelled indicates the order was abandoned before shipping.
	// This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		NotProcessed: "NotProcessed",
		Processed:    "Processed",
		Shipping:     "Shipping",
		Delivered:    "Delivered",
		Cancelled:    "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotProcessed: "NotProcessed",
		Processed:    "Processed",
		Shipping:     "Shipping",
		Delivered:    "Delivered",
		Cancelled:    "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Process transitions the status to Processed.
// Valid only from NotProcessed.
func (s Status) Process() (Status, error) {
	if s != NotProcessed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be processed",
			fmt.Errorf("%s is not a valid status to process", s.String()),
		)
	}
	return Processed, nil
}

// Ship transitions the status to Shipping.
// Valid only from Processed.
func (s Status) Ship() (Status, error) {
	if s != Processed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot start shipping",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return Shipping, nil
}

// Deliver transitions the status to Delivered.
// Valid only from Shipping.
func (s Status) Deliver() (Status, error) {
	if s != Shipping {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be delivered",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from NotProcessed and Processed; orders already shipping or
// delivered cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != NotProcessed && s != Processed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be cancelled",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
