package model

import "github.com/shopspring/decimal"

// Kategori produk mengikuti master produk lama
var ProductCategories = []string{"Makanan", "Minuman", "Jasa", "Retail", "Lainnya"}

type Product struct {
	BaseModel
	Name      string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Category  string          `gorm:"type:varchar(50);not null" json:"category" validate:"required,oneof=Makanan Minuman Jasa Retail Lainnya"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_cost" validate:"money"`  // HPP (Modal)
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price" validate:"money"` // Harga Jual
	MarginPct decimal.Decimal `gorm:"type:decimal(20,4)" json:"margin_pct"`          // Derived, display only
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	ImageURL  string          `gorm:"type:text" json:"image_url,omitempty"`

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string `gorm:"type:varchar(255)" json:"updated_by_user_id,omitempty"`
}

// ComputeMargin sets MarginPct = (price - cost) / price * 100.
// Zero price yields zero margin (avoid division by zero).
func (p *Product) ComputeMargin() {
	if p.UnitPrice.IsZero() {
		p.MarginPct = decimal.Zero
		return
	}
	hundred := decimal.NewFromInt(100)
	p.MarginPct = p.UnitPrice.Sub(p.UnitCost).Div(p.UnitPrice).Mul(hundred)
}

// IsValidCategory checks against the known category list
func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
