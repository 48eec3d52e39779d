package assignment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the driver's response state for an assignment.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Both branches are terminal: a resolved assignment can never be re-resolved.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status while the driver has not responded.
	Pending

	// Accepted indicates the driver took the order. Terminal.
	Accepted

	// Rejected indicates the driver declined the order. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
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

// IsResolved reports whether the driver has responded.
func (s Status) IsResolved() bool {
	return s == Accepted || s == Rejected
}
