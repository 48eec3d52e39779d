// Package catalogrepo provides data transfer objects and mapping functions
// for food catalog persistence. The sale price is nullable: a food without
// one can never be added to an order.
package catalogrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FoodDTO represents the database structure for persisting catalog foods.
type FoodDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     int64
	SalePrice *int64
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for food entities.
func (FoodDTO) TableName() string {
	return "foods"
}

// fromDomain converts a food domain aggregate to its database
// representation.
func fromDomain(aggregate *catalog.Food) FoodDTO {
	var salePrice *int64
	if price, err := aggregate.SalePrice(); err == nil {
		raw := price.Amount()
		salePrice = &raw
	}

	return FoodDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Price:     aggregate.Price().Amount(),
		SalePrice: salePrice,
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a food domain aggregate.
func toDomain(dto FoodDTO) (*catalog.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var salePrice *kernel.Money
	if dto.SalePrice != nil {
		sale, saleErr := kernel.NewMoney(*dto.SalePrice)
		if saleErr != nil {
			return nil, saleErr
		}

		salePrice = &sale
	}

	return catalog.RestoreFood(id, dto.Name, price, salePrice, dto.Available)
}
