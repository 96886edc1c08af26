package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger row: one row per cart line, not per checkout.
// The ledger is append-only; nothing in this codebase updates or deletes rows.
type Transaction struct {
	BaseModel
	Date          time.Time       `gorm:"type:date;not null;index" json:"date" validate:"required"`
	CustomerPhone string          `gorm:"type:varchar(20);not null;index" json:"customer_phone"` // "0" untuk guest
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name"`       // Snapshot saat checkout
	ProductName   string          `gorm:"type:varchar(255);not null;index" json:"product_name"`  // Soft reference ke catalog
	Quantity      int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"line_total"`
	LineCost      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"line_cost"`
	LineProfit    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"line_profit"` // Laba = Total - Modal

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
}
