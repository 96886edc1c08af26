package model

import "github.com/shopspring/decimal"

// LineItem captures price and cost at add-time. They are not re-read from the
// catalog unless checkout runs with repricing enabled.
type LineItem struct {
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Quantity    int             `json:"quantity"`
}

// Subtotal = UnitPrice * Quantity
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// TotalCost = UnitCost * Quantity
func (li LineItem) TotalCost() decimal.Decimal {
	return li.UnitCost.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the transient keranjang for one cashier session. It is owned by a
// single session and needs no locking. Adding the same product twice keeps two
// separate lines in insertion order; lines are never merged.
type Cart struct {
	lines []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem validates 1 <= qty <= product.Stock and appends a line with the
// product's current price and cost snapshotted.
func (c *Cart) AddItem(product *Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if qty > product.Stock {
		return ErrInsufficientStock
	}
	c.lines = append(c.lines, LineItem{
		ProductName: product.Name,
		UnitPrice:   product.UnitPrice,
		UnitCost:    product.UnitCost,
		Quantity:    qty,
	})
	return nil
}

// Items returns a copy so callers can't mutate cart order from outside.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal is the grand total billed to the buyer (Total Tagihan).
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.lines {
		total = total.Add(li.Subtotal())
	}
	return total
}

// TotalCost is the summed modal of everything in the cart.
func (c *Cart) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.lines {
		total = total.Add(li.TotalCost())
	}
	return total
}
