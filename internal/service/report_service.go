package service

import (
	"fmt"
	"time"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	GetAllTransactions() ([]model.Transaction, error)
	GetDailySales(days int) ([]repository.DailySalesData, error)
	GetSalesSummary(startDate, endDate time.Time) (*repository.SalesSummary, error)
	ExportSalesXLSX(startDate, endDate time.Time) ([]byte, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

func (s *reportService) GetAllTransactions() ([]model.Transaction, error) {
	return s.txRepo.FindAll()
}

func (s *reportService) GetDailySales(days int) ([]repository.DailySalesData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.txRepo.GetDailySales(startDate, endDate)
}

func (s *reportService) GetSalesSummary(startDate, endDate time.Time) (*repository.SalesSummary, error) {
	return s.txRepo.GetSalesSummary(startDate, endDate)
}

// ExportSalesXLSX menulis laporan transaksi ke spreadsheet untuk pembukuan
func (s *reportService) ExportSalesXLSX(startDate, endDate time.Time) ([]byte, error) {
	transactions, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Laporan Transaksi"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Tanggal", "Pelanggan", "No HP", "Produk", "Qty", "Total", "Modal", "Laba"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, tx := range transactions {
		if tx.Date.Before(startDate) || tx.Date.After(endDate) {
			continue
		}
		values := []interface{}{
			tx.Date.Format("2006-01-02"),
			tx.CustomerName,
			tx.CustomerPhone,
			tx.ProductName,
			tx.Quantity,
			tx.LineTotal.InexactFloat64(),
			tx.LineCost.InexactFloat64(),
			tx.LineProfit.InexactFloat64(),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// Baris total di bawah data
	summary, err := s.txRepo.GetSalesSummary(startDate, endDate)
	if err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row+1), summary.Revenue.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row+1), summary.Cost.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row+1), summary.Profit.InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
