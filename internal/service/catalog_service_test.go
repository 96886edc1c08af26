package service

import (
	"testing"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"
	"go-umkm-pos/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (CatalogService, repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)
	hub := ws.NewHub()
	go hub.Run()
	products := repository.NewProductRepo(db)
	return NewCatalogService(products, db, hub), products
}

func TestCreateProductDerivesMargin(t *testing.T) {
	catalog, products := newCatalogFixture(t)

	p := &model.Product{
		Name:      "Kopi",
		Category:  "Minuman",
		UnitCost:  decimal.NewFromInt(5000),
		UnitPrice: decimal.NewFromInt(10000),
		Stock:     10,
		MarginPct: decimal.NewFromInt(99), // input user diabaikan
	}
	require.NoError(t, catalog.CreateProduct(p, "admin-1", "Admin"))

	saved, err := products.FindByName("Kopi")
	require.NoError(t, err)
	assert.True(t, saved.MarginPct.Equal(decimal.NewFromInt(50)), "margin %s", saved.MarginPct)
}

func TestCreateProductDuplicateName(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	p := &model.Product{Name: "Kopi", Category: "Minuman", Stock: 10,
		UnitCost: decimal.NewFromInt(5000), UnitPrice: decimal.NewFromInt(10000)}
	require.NoError(t, catalog.CreateProduct(p, "admin-1", "Admin"))

	dup := &model.Product{Name: "Kopi", Category: "Minuman", Stock: 5,
		UnitCost: decimal.NewFromInt(4000), UnitPrice: decimal.NewFromInt(9000)}
	err := catalog.CreateProduct(dup, "admin-1", "Admin")
	assert.ErrorIs(t, err, model.ErrDuplicateProduct)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	p := &model.Product{Name: "Misterius", Category: "Gaib", Stock: 1,
		UnitCost: decimal.NewFromInt(1000), UnitPrice: decimal.NewFromInt(2000)}
	assert.Error(t, catalog.CreateProduct(p, "admin-1", "Admin"))
}

// Restock menambah stok, bukan mengganti angka absolut.
func TestRestockAdds(t *testing.T) {
	catalog, products := newCatalogFixture(t)

	p := &model.Product{Name: "Kopi", Category: "Minuman", Stock: 3,
		UnitCost: decimal.NewFromInt(5000), UnitPrice: decimal.NewFromInt(10000)}
	require.NoError(t, catalog.CreateProduct(p, "admin-1", "Admin"))

	saved, err := products.FindByName("Kopi")
	require.NoError(t, err)

	updated, err := catalog.Restock(saved.ID, 10, "admin-1", "Admin")
	require.NoError(t, err)
	assert.Equal(t, 13, updated.Stock)

	_, err = catalog.Restock(saved.ID, 0, "admin-1", "Admin")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}
