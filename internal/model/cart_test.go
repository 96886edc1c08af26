package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kopi() *Product {
	return &Product{
		Name:      "Kopi",
		Category:  "Minuman",
		UnitCost:  decimal.NewFromInt(5000),
		UnitPrice: decimal.NewFromInt(10000),
		Stock:     10,
	}
}

func TestCartAddItemSnapshotsPriceAndCost(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(kopi(), 3))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Kopi", items[0].ProductName)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(30000)), "subtotal %s", cart.Subtotal())
	assert.True(t, cart.TotalCost().Equal(decimal.NewFromInt(15000)), "total cost %s", cart.TotalCost())
}

func TestCartRejectsQuantityOverStock(t *testing.T) {
	cart := NewCart()
	err := cart.AddItem(kopi(), 11)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, cart.IsEmpty(), "failed add must not mutate the cart")
}

func TestCartRejectsZeroAndNegativeQuantity(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.AddItem(kopi(), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(kopi(), -2), ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

// Same product added twice stays as two lines, in insertion order.
func TestCartKeepsDuplicateProductsAsSeparateLines(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(kopi(), 2))
	require.NoError(t, cart.AddItem(kopi(), 3))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(50000)))
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(kopi(), 1))
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(kopi(), 1))

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
