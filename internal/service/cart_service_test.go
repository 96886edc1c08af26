package service

import (
	"testing"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (CartService, repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)
	products := repository.NewProductRepo(db)
	return NewCartService(products), products
}

func TestCartServiceAddItemSnapshotsCatalogPrice(t *testing.T) {
	carts, products := newCartFixture(t)

	p := &model.Product{
		Name:      "Kopi",
		Category:  "Minuman",
		UnitCost:  decimal.NewFromInt(5000),
		UnitPrice: decimal.NewFromInt(10000),
		Stock:     10,
	}
	require.NoError(t, products.Create(p))

	cart, err := carts.AddItem("kasir-1", "Kopi", 3)
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(10000)))
	assert.True(t, items[0].UnitCost.Equal(decimal.NewFromInt(5000)))
}

func TestCartServiceUnknownProduct(t *testing.T) {
	carts, _ := newCartFixture(t)

	_, err := carts.AddItem("kasir-1", "Tidak Ada", 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCartServiceRejectsOverStockAtAddTime(t *testing.T) {
	carts, products := newCartFixture(t)

	p := &model.Product{Name: "Kopi", Category: "Minuman", Stock: 10,
		UnitCost: decimal.NewFromInt(5000), UnitPrice: decimal.NewFromInt(10000)}
	require.NoError(t, products.Create(p))

	_, err := carts.AddItem("kasir-1", "Kopi", 11)
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.True(t, carts.Get("kasir-1").IsEmpty())
}

// Tiap sesi kasir punya keranjang sendiri.
func TestCartServiceIsolatesOwners(t *testing.T) {
	carts, products := newCartFixture(t)

	p := &model.Product{Name: "Kopi", Category: "Minuman", Stock: 10,
		UnitCost: decimal.NewFromInt(5000), UnitPrice: decimal.NewFromInt(10000)}
	require.NoError(t, products.Create(p))

	_, err := carts.AddItem("kasir-1", "Kopi", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, carts.Get("kasir-1").Len())
	assert.True(t, carts.Get("kasir-2").IsEmpty())

	carts.Clear("kasir-1")
	assert.True(t, carts.Get("kasir-1").IsEmpty())
}
