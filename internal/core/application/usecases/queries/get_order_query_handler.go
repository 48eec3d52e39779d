package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model.
// Reads go through the entity cache first; on a miss the handler queries the
// database with raw SQL and repopulates the cache. A cache failure in either
// direction degrades to a plain database read.
type GetOrderQueryHandler struct {
	db       *gorm.DB
	cache    ports.EntityCache
	cacheTTL time.Duration
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(
	db *gorm.DB, cache ports.EntityCache, cacheTTL time.Duration,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Handle executes the query.
// Returns a not-found error when no order exists for the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	key := ports.OrderCacheKey(query.OrderID())
	if payload, err := h.cache.Get(ctx, key); err == nil && payload != nil {
		var cached GetOrderQueryResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	resp, err := h.readOrder(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if payload, err := json.Marshal(resp); err == nil {
		_ = h.cache.Set(ctx, key, payload, h.cacheTTL)
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			street,
			city,
			phone,
			transaction,
			amount,
			status,
			is_paid,
			points,
			available
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&resp.Street,
		&resp.City,
		&resp.Phone,
		&resp.Transaction,
		&resp.Amount,
		&status,
		&resp.IsPaid,
		&resp.Points,
		&resp.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = id.String()
	resp.CustomerID = customerID.String()
	resp.Status = order.Status(status).String()

	items, err := h.readItems(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(
	ctx context.Context,
	query GetOrderQuery,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			food_id,
			name,
			price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id, foodID uuid.UUID

		err = rows.Scan(
			&id,
			&foodID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		item.ID = id.String()
		item.FoodID = foodID.String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
