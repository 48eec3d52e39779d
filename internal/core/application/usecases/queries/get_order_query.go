// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read through raw SQL, returning
// flat read models shaped for the transport layer.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when the query was not built
// through NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order together with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order read model.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order read model. Identifiers are plain
// strings so the response serializes directly to JSON for both the HTTP
// layer and the cache.
type GetOrderQueryResponse struct {
	ID          string                 `json:"id"`
	CustomerID  string                 `json:"customer_id"`
	Street      string                 `json:"street"`
	City        string                 `json:"city"`
	Phone       string                 `json:"phone"`
	Transaction string                 `json:"transaction"`
	Amount      int64                  `json:"amount"`
	Status      string                 `json:"status"`
	IsPaid      bool                   `json:"is_paid"`
	Points      int                    `json:"points"`
	Available   bool                   `json:"available"`
	Items       []GetOrderItemResponse `json:"items"`
}

// GetOrderItemResponse is one order line in the read model.
type GetOrderItemResponse struct {
	ID       string `json:"id"`
	FoodID   string `json:"food_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}
