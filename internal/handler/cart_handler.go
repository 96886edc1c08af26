package handler

import (
	"go-umkm-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

type AddItemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// AddItem menambah satu baris ke keranjang sesi kasir ini
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "product_name is required"})
	}

	cart, err := h.service.AddItem(getUserID(c), req.ProductName, req.Quantity)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Item added to cart",
		"items":      cart.Items(),
		"subtotal":   cart.Subtotal(),
		"total_cost": cart.TotalCost(),
	})
}

// GetCart menampilkan isi keranjang beserta Total Tagihan
// GET /api/v1/cart
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart := h.service.Get(getUserID(c))
	return c.JSON(fiber.Map{
		"items":      cart.Items(),
		"subtotal":   cart.Subtotal(),
		"total_cost": cart.TotalCost(),
	})
}

// ClearCart membatalkan keranjang; tidak ada store yang tersentuh
// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	h.service.Clear(getUserID(c))
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
