package handler

import (
	"strconv"
	"time"

	"go-umkm-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// parseRange menerjemahkan query range (7d/1m/3m/6m/12m) ke rentang tanggal
func parseRange(c *fiber.Ctx) (time.Time, time.Time) {
	rangeParam := c.Query("range", "7d")
	now := time.Now()

	switch rangeParam {
	case "7d":
		return now.AddDate(0, 0, -7), now
	case "1m":
		return now.AddDate(0, -1, 0), now
	case "3m":
		return now.AddDate(0, -3, 0), now
	case "6m":
		return now.AddDate(0, -6, 0), now
	case "12m":
		return now.AddDate(0, -12, 0), now
	default:
		return now.AddDate(0, 0, -7), now
	}
}

func (h *ReportHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

// GetDailySales returns per-day revenue/cost/profit rows for charts
// Query params: days (default 7)
func (h *ReportHandler) GetDailySales(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetDailySales(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch daily sales"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

func (h *ReportHandler) GetSalesSummary(c *fiber.Ctx) error {
	startDate, endDate := parseRange(c)

	summary, err := h.service.GetSalesSummary(startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// ExportSales mengirim laporan sebagai file xlsx
// GET /api/v1/reports/export?range=1m
func (h *ReportHandler) ExportSales(c *fiber.Ctx) error {
	startDate, endDate := parseRange(c)

	data, err := h.service.ExportSalesXLSX(startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="laporan-transaksi.xlsx"`)
	return c.Send(data)
}
