package domain

import (
	"math"
	"testing"

	catalog "elite-store/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Product", Price: decimal.RequireFromString(price)}
}

func quantities(c *Cart) map[int]int {
	out := map[int]int{}
	for _, l := range c.Lines() {
		out[l.ID] = l.Quantity
	}
	return out
}

// TestCart_Add verifies repeated adds increment one line and preserve insertion order.
func TestCart_Add(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "16.99"))
	c.Add(product(1, "16.99"))
	c.Add(product(2, "5.00"))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

// TestCart_Totals verifies item count and subtotal are derived from the lines.
func TestCart_Totals(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		totals := NewCart(nil).Totals()
		assert.Equal(t, 0, totals.ItemCount)
		assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
	})

	t.Run("TwoOfOne", func(t *testing.T) {
		c := NewCart(nil)
		c.Add(product(1, "16.99"))
		c.Add(product(1, "16.99"))

		totals := c.Totals()
		assert.Equal(t, 2, totals.ItemCount)
		assert.Equal(t, "33.98", totals.Subtotal.StringFixed(2))
	})

	t.Run("NoFloatDrift", func(t *testing.T) {
		c := NewCart(nil)
		c.Add(product(1, "0.10"))
		c.Add(product(2, "0.20"))
		assert.True(t, c.Totals().Subtotal.Equal(decimal.RequireFromString("0.30")))
	})
}

// TestCart_SetQuantity verifies the quantity is replaced and unchanged values report no change.
func TestCart_SetQuantity(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "16.99"))

	assert.True(t, c.SetQuantity(1, 3))
	assert.Equal(t, 3, quantities(c)[1])
	assert.Equal(t, "50.97", c.Totals().Subtotal.StringFixed(2))

	assert.False(t, c.SetQuantity(1, 3))
	assert.False(t, c.SetQuantity(99, 2))

	assert.True(t, c.SetQuantity(1, 0))
	assert.True(t, c.IsEmpty())
}

// TestCart_SetQuantity_Negative verifies a negative quantity removes the line.
func TestCart_SetQuantity_Negative(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "1"))
	c.SetQuantity(1, -5)
	assert.True(t, c.IsEmpty())
}

// TestCart_ChangeQuantity verifies deltas adjust the quantity and remove at zero.
func TestCart_ChangeQuantity(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "16.99"))

	assert.True(t, c.ChangeQuantity(1, 2))
	assert.Equal(t, 3, quantities(c)[1])

	assert.True(t, c.ChangeQuantity(1, -3))
	assert.True(t, c.IsEmpty())

	assert.False(t, c.ChangeQuantity(1, 1))
	assert.True(t, c.IsEmpty())
}

// TestCart_ChangeQuantity_Saturates verifies extreme deltas clamp instead of wrapping around.
func TestCart_ChangeQuantity_Saturates(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "16.99"))
	c.Add(product(2, "5.00"))

	assert.True(t, c.ChangeQuantity(1, math.MaxInt))
	assert.Equal(t, MaxQuantity, quantities(c)[1])
	assert.False(t, c.ChangeQuantity(1, 1))

	assert.True(t, c.ChangeQuantity(2, math.MinInt))
	_, ok := quantities(c)[2]
	assert.False(t, ok)

	assert.False(t, c.SetQuantity(1, math.MaxInt))
	assert.Equal(t, MaxQuantity, quantities(c)[1])

	c.Add(product(1, "16.99"))
	assert.Equal(t, MaxQuantity, quantities(c)[1])
}

// TestCart_Remove verifies removal keeps the remaining order and reports absent products.
func TestCart_Remove(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "1"))
	c.Add(product(2, "2"))
	c.Add(product(3, "3"))

	assert.True(t, c.Remove(2))
	assert.False(t, c.Remove(2))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 3, lines[1].ID)
}

// TestCart_Clear verifies Clear empties the cart.
func TestCart_Clear(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "1"))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Totals().ItemCount)
}

// TestCart_LinesIsCopy verifies callers cannot mutate the cart through Lines.
func TestCart_LinesIsCopy(t *testing.T) {
	c := NewCart(nil)
	c.Add(product(1, "1"))

	lines := c.Lines()
	lines[0].Quantity = 50

	assert.Equal(t, 1, quantities(c)[1])
}

// TestNewCart_Normalises verifies restored lines are merged and non-positive quantities dropped.
func TestNewCart_Normalises(t *testing.T) {
	c := NewCart([]Line{
		{Product: product(1, "1"), Quantity: 2},
		{Product: product(2, "1"), Quantity: 0},
		{Product: product(1, "1"), Quantity: 1},
		{Product: product(3, "1"), Quantity: -1},
	})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

// TestCart_UniqueLinesInvariant verifies no sequence of mutations yields duplicate product lines.
func TestCart_UniqueLinesInvariant(t *testing.T) {
	c := NewCart(nil)
	ops := []func(){
		func() { c.Add(product(1, "1")) },
		func() { c.Add(product(2, "2")) },
		func() { c.ChangeQuantity(1, 4) },
		func() { c.Add(product(1, "1")) },
		func() { c.SetQuantity(2, 0) },
		func() { c.Add(product(2, "2")) },
		func() { c.ChangeQuantity(2, -1) },
	}

	for _, op := range ops {
		op()
		seen := map[int]bool{}
		sum := 0
		for _, l := range c.Lines() {
			assert.False(t, seen[l.ID], "duplicate line for product %d", l.ID)
			assert.GreaterOrEqual(t, l.Quantity, 1)
			seen[l.ID] = true
			sum += l.Quantity
		}
		assert.Equal(t, sum, c.Totals().ItemCount)
	}
}
