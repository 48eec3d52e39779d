package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

// ErrGetActiveDeliveriesQueryIsNotConstructed is returned when the query was
// not built through NewGetActiveDeliveriesQuery.
var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves all deliveries that have not reached a
// terminal status. Used by dispatchers to monitor in-flight work.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for in-flight deliveries.
// This is a parameterless query that fetches the complete active set.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents one in-flight delivery in the
// read model. DriverID is nil while the delivery is still pending a driver.
type GetActiveDeliveriesQueryResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	DriverID   *string    `json:"driver_id,omitempty"`
	Status     string     `json:"status"`
	PickedUpAt *time.Time `json:"picked_up_at,omitempty"`
}
