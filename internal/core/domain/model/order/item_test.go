package order_test

import (
	"testing"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	itemID := kernel.NewUUID()
	productID := kernel.NewUUID()
	price := order.MustMoneyFromString("29.99")
	noDiscount := order.ZeroMoney()

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(itemID, productID, 2, price, noDiscount, 1000)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(itemID))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.UnitPrice().Equal(price))
		assert.True(t, item.Subtotal().Equal(order.MustMoneyFromString("59.98")))
	})

	t.Run("should apply discount to subtotal", func(t *testing.T) {
		discount := order.MustMoneyFromString("10.00")

		item, err := order.NewItem(itemID, productID, 2, price, discount, 1000)

		require.NoError(t, err)
		assert.True(t, item.Subtotal().Equal(order.MustMoneyFromString("49.98")))
	})

	t.Run("should reject zero or negative quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(itemID, productID, quantity, price, noDiscount, 1000)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "quantity must be greater than 0")
		}
	})

	t.Run("should reject quantity above the configured cap", func(t *testing.T) {
		_, err := order.NewItem(itemID, productID, 1001, price, noDiscount, 1000)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot exceed 1000")
	})

	t.Run("should allow any quantity when cap is zero", func(t *testing.T) {
		_, err := order.NewItem(itemID, productID, 5000, price, noDiscount, 0)

		require.NoError(t, err)
	})

	t.Run("should reject non-positive unit price", func(t *testing.T) {
		for _, raw := range []string{"0.00", "-1.50"} {
			_, err := order.NewItem(itemID, productID, 1, order.MustMoneyFromString(raw), noDiscount, 1000)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "unit price must be greater than 0")
		}
	})

	t.Run("should reject negative discount", func(t *testing.T) {
		_, err := order.NewItem(itemID, productID, 1, price, order.MustMoneyFromString("-0.01"), 1000)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "discount cannot be negative")
	})

	t.Run("should reject discount equal to or above line total", func(t *testing.T) {
		for _, raw := range []string{"59.98", "60.00"} {
			_, err := order.NewItem(itemID, productID, 2, price, order.MustMoneyFromString(raw), 1000)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "discount cannot exceed subtotal")
		}
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := order.NewItem(zeroID, productID, 1, price, noDiscount, 1000)
		require.Error(t, err)

		_, err = order.NewItem(itemID, zeroID, 1, price, noDiscount, 1000)
		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should rehydrate without enforcing the quantity cap", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(),
			kernel.NewUUID(),
			5000,
			order.MustMoneyFromString("1.00"),
			order.ZeroMoney(),
		)

		require.NoError(t, err)
		assert.Equal(t, 5000, item.Quantity())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
