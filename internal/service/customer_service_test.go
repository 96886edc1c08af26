package service

import (
	"testing"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture(t *testing.T) CustomerService {
	t.Helper()
	db := setupTestDB(t)
	return NewCustomerService(repository.NewCustomerRepo(db))
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	customers := newCustomerFixture(t)

	require.NoError(t, customers.CreateCustomer(&model.Customer{Phone: "0812000111", Name: "Budi"}, "admin"))

	err := customers.CreateCustomer(&model.Customer{Phone: "0812000111", Name: "Budi Kedua"}, "admin")
	assert.ErrorIs(t, err, model.ErrDuplicatePhone)
}

func TestCreateCustomerRejectsGuestPhone(t *testing.T) {
	customers := newCustomerFixture(t)

	err := customers.CreateCustomer(&model.Customer{Phone: model.GuestPhone, Name: "Hantu"}, "admin")
	assert.Error(t, err)
}

func TestCreateCustomerStartsAtZeroSpend(t *testing.T) {
	customers := newCustomerFixture(t)

	c := &model.Customer{Phone: "0812000111", Name: "Budi", LifetimeSpend: decimal.NewFromInt(999999)}
	require.NoError(t, customers.CreateCustomer(c, "admin"))

	saved, err := customers.GetCustomerByPhone("0812000111")
	require.NoError(t, err)
	assert.True(t, saved.LifetimeSpend.IsZero(), "client-supplied spend must be ignored")
}

func TestTopSpendersOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCustomerRepo(db)
	customers := NewCustomerService(repo)

	seed := []struct {
		phone string
		name  string
		spend int64
	}{
		{"0812000111", "Budi", 50000},
		{"0812000222", "Sari", 150000},
		{"0812000333", "Agus", 100000},
	}
	for _, s := range seed {
		c := &model.Customer{Phone: s.phone, Name: s.name, LifetimeSpend: decimal.NewFromInt(s.spend)}
		require.NoError(t, db.Create(c).Error)
	}

	top, err := customers.GetTopSpenders(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Sari", top[0].Name)
	assert.Equal(t, "Agus", top[1].Name)
}
