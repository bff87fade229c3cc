package domain

import (
	catalog "elite-store/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
)

// Line is a product snapshot with its purchased quantity.
// It serialises as the product's fields plus "quantity".
type Line struct {
	catalog.Product
	// Quantity is always at least 1 while the line is in a cart.
	Quantity int `json:"quantity"`
}

// Total returns unit price times quantity.
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MaxQuantity caps a single line's quantity.
const MaxQuantity = 999

// Totals are derived from the cart lines, never stored.
type Totals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart is an ordered list of lines with at most one line per product id.
// Cart is not safe for concurrent use.
type Cart struct {
	lines []Line
}

// NewCart builds a cart from previously persisted lines.
// Lines with a non-positive quantity are dropped and duplicates are merged
// into the first occurrence.
func NewCart(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		l.Quantity = min(l.Quantity, MaxQuantity)
		if i := c.index(l.ID); i >= 0 {
			c.lines[i].Quantity = min(c.lines[i].Quantity+l.Quantity, MaxQuantity)
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) index(productID int) int {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the product's line or appends a new line with quantity 1.
// A line already at MaxQuantity is left unchanged.
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Quantity < MaxQuantity {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the product's line. It reports whether a line was removed.
func (c *Cart) Remove(productID int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity sets an existing line's quantity; qty <= 0 removes the line and
// qty above MaxQuantity is clamped. It reports whether the cart changed.
func (c *Cart) SetQuantity(productID, qty int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		return c.Remove(productID)
	}
	qty = min(qty, MaxQuantity)
	if c.lines[i].Quantity == qty {
		return false
	}
	c.lines[i].Quantity = qty
	return true
}

// ChangeQuantity is SetQuantity(current + delta), saturating at 0 and MaxQuantity.
func (c *Cart) ChangeQuantity(productID, delta int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}

	current := c.lines[i].Quantity
	switch {
	case delta >= MaxQuantity-current:
		return c.SetQuantity(productID, MaxQuantity)
	case delta <= -current:
		return c.Remove(productID)
	default:
		return c.SetQuantity(productID, current+delta)
	}
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals sums quantities and line totals.
func (c *Cart) Totals() Totals {
	t := Totals{Subtotal: decimal.Zero}
	for _, l := range c.lines {
		t.ItemCount += l.Quantity
		t.Subtotal = t.Subtotal.Add(l.Total())
	}
	return t
}
