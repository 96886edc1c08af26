package repository

import (
	"testing"

	"go-umkm-pos/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Customer{}, &model.Transaction{}))
	return db
}

func seedKopi(t *testing.T, db *gorm.DB, stock int) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:      "Kopi",
		Category:  "Minuman",
		UnitCost:  decimal.NewFromInt(5000),
		UnitPrice: decimal.NewFromInt(10000),
		Stock:     stock,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestDecrementStockGuard(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	p := seedKopi(t, db, 10)

	require.NoError(t, repo.DecrementStock(db, p.ID, 4, "kasir-1"))
	require.NoError(t, repo.DecrementStock(db, p.ID, 4, "kasir-1"))

	// Sisa 2: minta 5 harus ditolak, stok tidak boleh negatif
	err := repo.DecrementStock(db, p.ID, 5, "kasir-1")
	assert.ErrorIs(t, err, model.ErrInsufficientStock)

	saved, err := repo.FindByName("Kopi")
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Stock)
}

func TestAddStock(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	p := seedKopi(t, db, 3)

	require.NoError(t, repo.AddStock(db, p.ID, 7, "admin"))

	saved, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, saved.Stock)
}

func TestFindAvailableFiltersEmptyStock(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	seedKopi(t, db, 5)

	habis := &model.Product{Name: "Teh", Category: "Minuman",
		UnitCost: decimal.NewFromInt(2000), UnitPrice: decimal.NewFromInt(5000), Stock: 0}
	require.NoError(t, db.Create(habis).Error)

	available, err := repo.FindAvailable()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Kopi", available[0].Name)
}

func TestFindByNameNotFound(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)

	_, err := repo.FindByName("Tidak Ada")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreditSpendUnknownPhone(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewCustomerRepo(db)

	err := repo.CreditSpend(db, "0899999999", decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreditSpendAccumulates(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewCustomerRepo(db)

	c := &model.Customer{Phone: "0812000111", Name: "Budi", LifetimeSpend: decimal.Zero}
	require.NoError(t, db.Create(c).Error)

	require.NoError(t, repo.CreditSpend(db, "0812000111", decimal.NewFromInt(30000)))
	require.NoError(t, repo.CreditSpend(db, "0812000111", decimal.NewFromInt(20000)))

	saved, err := repo.FindByPhone("0812000111")
	require.NoError(t, err)
	assert.True(t, saved.LifetimeSpend.Equal(decimal.NewFromInt(50000)), "lifetime spend %s", saved.LifetimeSpend)
}
