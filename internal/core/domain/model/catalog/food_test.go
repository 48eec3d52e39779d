package catalog_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFood_SalePrice(t *testing.T) {
	listPrice, _ := kernel.NewMoney(1200)

	t.Run("missing_sale_price_fails", func(t *testing.T) {
		food, err := catalog.NewFood(kernel.NewUUID(), "Margherita", listPrice, nil)
		require.NoError(t, err)

		_, err = food.SalePrice()

		require.ErrorIs(t, err, catalog.ErrSalePriceIsMissing)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("returns_set_sale_price", func(t *testing.T) {
		sale, _ := kernel.NewMoney(1000)
		food, err := catalog.NewFood(kernel.NewUUID(), "Margherita", listPrice, &sale)
		require.NoError(t, err)

		got, err := food.SalePrice()

		require.NoError(t, err)
		assert.Equal(t, int64(1000), got.Amount())
	})

	t.Run("later_price_change_is_visible_on_the_food", func(t *testing.T) {
		sale, _ := kernel.NewMoney(1000)
		food, _ := catalog.NewFood(kernel.NewUUID(), "Margherita", listPrice, &sale)

		newSale, _ := kernel.NewMoney(800)
		food.SetSalePrice(newSale)

		got, err := food.SalePrice()
		require.NoError(t, err)
		assert.Equal(t, int64(800), got.Amount())
	})
}

func TestNewFood_Validation(t *testing.T) {
	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := catalog.NewFood(kernel.NewUUID(), "", kernel.Zero(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var food catalog.Food
		require.ErrorIs(t, food.Validate(), catalog.ErrFoodIsNotConstructed)
	})
}
