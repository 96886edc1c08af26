package service

import (
	"errors"
	"fmt"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"
	"go-umkm-pos/pkg/validator"

	"github.com/shopspring/decimal"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer, userID string) error
	GetAllCustomers() ([]model.Customer, error)
	GetCustomerByPhone(phone string) (*model.Customer, error)
	GetTopSpenders(limit int) ([]model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

func (s *customerService) CreateCustomer(req *model.Customer, userID string) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Nomor sentinel guest tidak boleh jadi pelanggan betulan
	if model.IsGuestRef(req.Phone) {
		return errors.New("phone number is reserved")
	}

	// 2. Cek Duplikasi Phone (phone adalah identity key)
	existing, err := s.customerRepo.FindByPhone(req.Phone)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if existing != nil {
		return model.ErrDuplicatePhone
	}

	// 3. Pelanggan baru selalu mulai dari belanja nol
	req.LifetimeSpend = decimal.Zero
	req.CreatedBy = userID
	req.UpdatedBy = userID

	return s.customerRepo.Create(req)
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomerByPhone(phone string) (*model.Customer, error) {
	return s.customerRepo.FindByPhone(phone)
}

// GetTopSpenders untuk papan "Top Pelanggan"
func (s *customerService) GetTopSpenders(limit int) ([]model.Customer, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.customerRepo.FindTopSpenders(limit)
}
