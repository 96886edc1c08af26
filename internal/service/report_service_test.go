package service

import (
	"bytes"
	"testing"
	"time"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func seedLedger(t *testing.T, db *gorm.DB, date time.Time, total, cost int64) {
	t.Helper()
	lineTotal := decimal.NewFromInt(total)
	lineCost := decimal.NewFromInt(cost)
	tx := &model.Transaction{
		Date:          date,
		CustomerPhone: model.GuestPhone,
		CustomerName:  model.GuestName,
		ProductName:   "Kopi",
		Quantity:      1,
		LineTotal:     lineTotal,
		LineCost:      lineCost,
		LineProfit:    lineTotal.Sub(lineCost),
	}
	require.NoError(t, db.Create(tx).Error)
}

func TestSalesSummary(t *testing.T) {
	db := setupTestDB(t)
	reports := NewReportService(repository.NewTransactionRepo(db))

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	seedLedger(t, db, day, 30000, 15000)
	seedLedger(t, db, day, 5000, 2000)

	summary, err := reports.GetSalesSummary(day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.EqualValues(t, 2, summary.RecordCount)
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(35000)), "revenue %s", summary.Revenue)
	assert.True(t, summary.Cost.Equal(decimal.NewFromInt(17000)))
	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(18000)))
}

func TestExportSalesXLSX(t *testing.T) {
	db := setupTestDB(t)
	reports := NewReportService(repository.NewTransactionRepo(db))

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	seedLedger(t, db, day, 30000, 15000)

	data, err := reports.ExportSalesXLSX(day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// File harus bisa dibuka lagi dan memuat baris data
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Laporan Transaksi")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Tanggal", rows[0][0])
	assert.Equal(t, "Kopi", rows[1][3])
}
