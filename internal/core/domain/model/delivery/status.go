package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the physical fulfillment state of a delivery.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──┬──> Delivered
//	                │                   │
//	                └───────────────────┴──> Failed
//
// Transitions only move forward; Delivered and Failed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a delivery created at payment time,
	// before any driver has accepted the order.
	Pending

	// Assigned indicates a driver accepted the order.
	Assigned

	// PickedUp indicates the driver collected the order.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Failed indicates the delivery could not be completed. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// Validate checks if the Status value is valid.
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

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}
