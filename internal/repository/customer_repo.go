package repository

import (
	"errors"

	"go-umkm-pos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
	FindTopSpenders(limit int) ([]model.Customer, error)
	CreditSpend(tx *gorm.DB, phone string, amount decimal.Decimal) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

// FindByPhone: phone adalah satu-satunya lookup key. Jangan pernah query by name.
func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindTopSpenders untuk ranking "Top Pelanggan"
func (r *customerRepo) FindTopSpenders(limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("lifetime_spend DESC").Limit(limit).Find(&customers).Error
	return customers, err
}

// CreditSpend menambah lifetime_spend di dalam transaksi checkout.
// Atomic increment di SQL, bukan read-modify-write di aplikasi.
func (r *customerRepo) CreditSpend(tx *gorm.DB, phone string, amount decimal.Decimal) error {
	res := tx.Model(&model.Customer{}).
		Where("phone = ?", phone).
		Update("lifetime_spend", gorm.Expr("lifetime_spend + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
