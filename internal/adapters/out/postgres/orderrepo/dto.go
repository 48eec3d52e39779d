// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored together with their line items; item
// rows carry the name and price snapshot taken when the line was added.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The transaction code carries a unique index so the idempotent
// payment reference stays unique at the storage level too.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Street      string
	City        string
	Phone       string
	Transaction string `gorm:"uniqueIndex"`
	Amount      int64
	Status      int `gorm:"index"`
	IsPaid      bool
	Points      int
	Available   bool
	Items       []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Name, price and subtotal are snapshots
// and never re-read from the catalog.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	FoodID    uuid.UUID `gorm:"type:uuid"`
	Name      string
	Price     int64
	Quantity  int
	Subtotal  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Street:      aggregate.Address().Street(),
		City:        aggregate.Address().City(),
		Phone:       aggregate.Address().Phone(),
		Transaction: aggregate.Transaction(),
		Amount:      aggregate.Amount().Amount(),
		Status:      int(aggregate.Status()),
		IsPaid:      aggregate.IsPaid(),
		Points:      aggregate.Points(),
		Available:   aggregate.IsAvailable(),
		Items:       items,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID().Bytes(),
		OrderID:  item.OrderID().Bytes(),
		FoodID:   item.FoodID().Bytes(),
		Name:     item.Name(),
		Price:    item.Price().Amount(),
		Quantity: item.Quantity(),
		Subtotal: item.Subtotal().Amount(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, preserving the stored amount and item snapshots.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.City, dto.Phone)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		dto.Transaction,
		amount,
		order.Status(dto.Status),
		dto.IsPaid,
		dto.Points,
		dto.Available,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, foodID, dto.Name, price, dto.Quantity, subtotal)
}
