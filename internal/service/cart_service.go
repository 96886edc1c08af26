package service

import (
	"sync"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"
)

// CartService memegang satu keranjang per sesi kasir. Keranjang sendiri tidak
// pakai lock (dimiliki satu sesi); mutex hanya menjaga map registry.
type CartService interface {
	Get(ownerID string) *model.Cart
	AddItem(ownerID, productName string, qty int) (*model.Cart, error)
	Clear(ownerID string)
}

type cartService struct {
	productRepo repository.ProductRepository

	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewCartService(pRepo repository.ProductRepository) CartService {
	return &cartService{
		productRepo: pRepo,
		carts:       make(map[string]*model.Cart),
	}
}

func (s *cartService) Get(ownerID string) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[ownerID]
	if !ok {
		cart = model.NewCart()
		s.carts[ownerID] = cart
	}
	return cart
}

// AddItem resolves the product and snapshots its current price/cost into the
// cart. Quantity is validated against live stock at add time.
func (s *cartService) AddItem(ownerID, productName string, qty int) (*model.Cart, error) {
	product, err := s.productRepo.FindByName(productName)
	if err != nil {
		return nil, err
	}

	cart := s.Get(ownerID)
	if err := cart.AddItem(product, qty); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear membatalkan keranjang tanpa menyentuh store manapun
func (s *cartService) Clear(ownerID string) {
	s.Get(ownerID).Clear()
}
