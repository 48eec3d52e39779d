package services

import (
	"math/rand/v2"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrNoDriversAvailable is returned when no eligible driver exists for an
// order. The candidate set may be non-empty and still yield no eligible
// driver once availability, verification, and active-shift filters apply.
var ErrNoDriversAvailable = errs.NewObjectNotFoundError("driver", "no eligible drivers")

// DriverSelector is the policy for picking one driver for an order.
// The selection strategy is deliberately an interface: the current policy is
// uniform random with no geographic or load awareness, and a future ranking
// strategy must be substitutable without touching the assignment workflow.
type DriverSelector interface {
	// Select picks one driver from the candidates for the given order.
	// Returns ErrNoDriversAvailable when no candidate is eligible.
	Select(o *order.Order, candidates []*driver.Driver) (*driver.Driver, error)
}

// RandomDriverSelector selects uniformly at random among eligible candidates.
// TODO: add a location-aware ranking policy once driver geo positions are tracked.
type RandomDriverSelector struct{}

// NewRandomDriverSelector creates the uniform random selection policy.
func NewRandomDriverSelector() RandomDriverSelector {
	return RandomDriverSelector{}
}

// Select validates the order, filters the candidates down to eligible
// drivers (available, verified, active), and picks one uniformly at random.
func (s RandomDriverSelector) Select(o *order.Order, candidates []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	eligible := make([]*driver.Driver, 0, len(candidates))
	for _, d := range candidates {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.IsEligible() {
			eligible = append(eligible, d)
		}
	}

	if len(eligible) == 0 {
		return nil, ErrNoDriversAvailable
	}

	return eligible[rand.IntN(len(eligible))], nil
}
