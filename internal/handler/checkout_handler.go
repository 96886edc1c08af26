package handler

import (
	"time"

	"go-umkm-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	cartService     service.CartService
}

func NewCheckoutHandler(checkout service.CheckoutService, carts service.CartService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkout,
		cartService:     carts,
	}
}

type CheckoutRequest struct {
	CustomerPhone string `json:"customer_phone"` // "0" atau kosong = Umum (Guest)
	Date          string `json:"date"`           // YYYY-MM-DD, default hari ini
}

// Commit memproses pembayaran keranjang sesi ini
// POST /api/v1/checkout
func (h *CheckoutHandler) Commit(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, use YYYY-MM-DD"})
		}
		date = parsed
	}

	cashierID := getUserID(c)
	cart := h.cartService.Get(cashierID)

	result, err := h.checkoutService.Commit(cart, req.CustomerPhone, date, cashierID)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaksi Berhasil", "data": result})
}
