// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence, including the append-only failure log. A unique
// index on order_id guarantees one delivery per order at the storage level.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      int        `gorm:"index"`
	Signature   string
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// FailedDeliveryDTO represents one failure log entry. Rows are insert-only.
type FailedDeliveryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	DriverID  uuid.UUID `gorm:"type:uuid"`
	Reason    string
	FailedAt  time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for failure log entries.
func (FailedDeliveryDTO) TableName() string {
	return "failed_deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		DriverID:    driverID,
		Status:      int(aggregate.Status()),
		Signature:   aggregate.Signature(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		IsCompleted: aggregate.IsCompleted(),
	}
}

// failureFromDomain converts a failure log entry to its database
// representation.
func failureFromDomain(entry *delivery.FailedDelivery) FailedDeliveryDTO {
	return FailedDeliveryDTO{
		ID:       entry.ID().Bytes(),
		OrderID:  entry.OrderID().Bytes(),
		DriverID: entry.DriverID().Bytes(),
		Reason:   entry.Reason(),
		FailedAt: entry.FailedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		driverID,
		delivery.Status(dto.Status),
		dto.Signature,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.IsCompleted,
	)
}
