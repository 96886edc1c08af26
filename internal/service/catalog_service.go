package service

import (
	"errors"
	"fmt"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"
	"go-umkm-pos/internal/ws"
	"go-umkm-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(req *model.Product, userID, userName string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error)
	Restock(id uuid.UUID, qty int, userID, userName string) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
	GetAvailableProducts() ([]model.Product, error)
	GetProductByName(name string) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *catalogService) CreateProduct(req *model.Product, userID, userName string) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.UnitCost.IsNegative() || req.UnitPrice.IsNegative() {
		return errors.New("cost and price must not be negative")
	}
	if req.Stock < 0 {
		return errors.New("stock must not be negative")
	}

	// 2. Cek Duplikasi Nama (nama produk adalah key catalog)
	existing, err := s.productRepo.FindByName(req.Name)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if existing != nil {
		return model.ErrDuplicateProduct
	}

	// 3. Margin dihitung dari cost/price, bukan input user
	req.ComputeMargin()

	// 4. Set Audit Fields
	req.CreatedBy = userID
	req.UpdatedBy = userID
	req.CreatedByUserID = &userID
	req.UpdatedByUserID = &userID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	// 5. Broadcast ke layar kasir
	go s.wsHub.BroadcastEvent("stock_update", map[string]interface{}{
		"action": "product_created",
		"product": map[string]interface{}{
			"id":         req.ID,
			"name":       req.Name,
			"category":   req.Category,
			"stock":      req.Stock,
			"unit_price": req.UnitPrice,
		},
		"message": fmt.Sprintf("%s created product '%s'", userName, req.Name),
	})

	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != existing.Name {
		// Rename harus tetap unik
		dup, err := s.productRepo.FindByName(req.Name)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		if dup != nil {
			return nil, model.ErrDuplicateProduct
		}
		existing.Name = req.Name
	}
	if req.Category != "" {
		if !model.IsValidCategory(req.Category) {
			return nil, fmt.Errorf("unknown category '%s'", req.Category)
		}
		existing.Category = req.Category
	}
	if req.UnitCost.IsNegative() || req.UnitPrice.IsNegative() {
		return nil, errors.New("cost and price must not be negative")
	}
	if !req.UnitPrice.IsZero() {
		existing.UnitPrice = req.UnitPrice
	}
	if !req.UnitCost.IsZero() {
		existing.UnitCost = req.UnitCost
	}
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}
	existing.ComputeMargin()
	existing.UpdatedBy = userID
	existing.UpdatedByUserID = &userID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent("stock_update", map[string]interface{}{
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":         existing.ID,
			"name":       existing.Name,
			"stock":      existing.Stock,
			"unit_price": existing.UnitPrice,
		},
		"message": fmt.Sprintf("%s updated product '%s'", userName, existing.Name),
	})

	return existing, nil
}

// Restock menambah stok ("Stok Tambahan" di master produk lama)
func (s *catalogService) Restock(id uuid.UUID, qty int, userID, userName string) (*model.Product, error) {
	if qty < 1 {
		return nil, model.ErrInvalidQuantity
	}

	if err := s.productRepo.AddStock(s.db, id, qty, userID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent("stock_update", map[string]interface{}{
		"action": "product_restocked",
		"product": map[string]interface{}{
			"id":        product.ID,
			"name":      product.Name,
			"new_stock": product.Stock,
		},
		"message": fmt.Sprintf("%s added %d units of '%s'", userName, qty, product.Name),
	})

	return product, nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetAvailableProducts() ([]model.Product, error) {
	return s.productRepo.FindAvailable()
}

func (s *catalogService) GetProductByName(name string) (*model.Product, error) {
	return s.productRepo.FindByName(name)
}
