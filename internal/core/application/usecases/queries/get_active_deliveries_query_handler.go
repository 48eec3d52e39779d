package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves deliveries that are still
// in flight. Reads directly from the database with raw SQL and never
// touches the cache because the result spans many orders.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// queries.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice when nothing is in flight.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			driver_id,
			status,
			picked_up_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, int(delivery.Delivered), int(delivery.Failed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetActiveDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var driverID uuid.NullUUID
		var status int
		var pickedUpAt sql.NullTime

		err = rows.Scan(&id, &orderID, &driverID, &status, &pickedUpAt)
		if err != nil {
			return nil, err
		}

		item.ID = id.String()
		item.OrderID = orderID.String()
		item.Status = delivery.Status(status).String()
		if driverID.Valid {
			s := driverID.UUID.String()
			item.DriverID = &s
		}
		if pickedUpAt.Valid {
			ts := pickedUpAt.Time
			item.PickedUpAt = &ts
		}

		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
