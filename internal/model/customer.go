package model

import "github.com/shopspring/decimal"

// Guest sentinel: transaksi tanpa pelanggan terdaftar.
// Tidak pernah menyentuh tabel customers.
const (
	GuestPhone = "0"
	GuestName  = "Umum (Guest)"
)

// IsGuestRef reports whether the customer reference means "no customer record".
func IsGuestRef(phone string) bool {
	return phone == "" || phone == GuestPhone
}

// Customer is keyed by phone number. Name is display data and is never
// used for lookups (names are not unique).
type Customer struct {
	BaseModel
	Phone         string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address       string          `gorm:"type:text" json:"address,omitempty"`
	LifetimeSpend decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"lifetime_spend"` // Total Belanja
}
