package repository

import (
	"errors"
	"time"

	"go-umkm-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	CreateBatch(tx *gorm.DB, records []model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	GetDailySales(startDate, endDate time.Time) ([]DailySalesData, error)
	GetSalesSummary(startDate, endDate time.Time) (*SalesSummary, error)
}

// DailySalesData untuk chart data laporan
type DailySalesData struct {
	Date     string          `json:"date"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	Profit   decimal.Decimal `json:"profit"`
}

// SalesSummary untuk overview laporan transaksi
type SalesSummary struct {
	RecordCount int64           `json:"record_count"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// CreateBatch menulis semua baris ledger dari satu checkout dalam satu insert.
// Harus dipanggil di dalam transaksi bersama update stok dan loyalty.
// Ledger bersifat append-only; repository ini sengaja tidak punya Update/Delete.
func (r *transactionRepo) CreateBatch(tx *gorm.DB, records []model.Transaction) error {
	if len(records) == 0 {
		return errors.New("no records to append")
	}
	return tx.Create(&records).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) GetDailySales(startDate, endDate time.Time) ([]DailySalesData, error) {
	var results []DailySalesData

	// Query untuk aggregate penjualan per hari
	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(date) as day,
			COALESCE(SUM(quantity), 0) as quantity,
			COALESCE(SUM(line_total), 0) as revenue,
			COALESCE(SUM(line_cost), 0) as cost,
			COALESCE(SUM(line_profit), 0) as profit
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(date)").
		Order("day ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySalesData
		if err := rows.Scan(&data.Date, &data.Quantity, &data.Revenue, &data.Cost, &data.Profit); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *transactionRepo) GetSalesSummary(startDate, endDate time.Time) (*SalesSummary, error) {
	var summary SalesSummary

	base := r.db.Model(&model.Transaction{}).Where("date BETWEEN ? AND ?", startDate, endDate)

	if err := base.Session(&gorm.Session{}).Count(&summary.RecordCount).Error; err != nil {
		return nil, err
	}

	row := base.Session(&gorm.Session{}).
		Select(`
			COALESCE(SUM(line_total), 0),
			COALESCE(SUM(line_cost), 0),
			COALESCE(SUM(line_profit), 0)
		`).Row()
	if err := row.Scan(&summary.Revenue, &summary.Cost, &summary.Profit); err != nil {
		return nil, err
	}

	return &summary, nil
}
