package model

import "errors"

// Domain errors. Semua recoverable di boundary (handler), jangan panic.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateProduct  = errors.New("product name already exists")
	ErrDuplicatePhone    = errors.New("phone number already registered")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductVanished   = errors.New("product no longer exists in catalog")
)
