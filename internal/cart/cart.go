// Package cart holds the in-memory session cart. Lines merge by product
// code, quantities adjust in place, and the total is always recomputed from
// the lines rather than cached.
package cart

import (
	"sync"

	"github.com/mibarrunto/barrunto-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Item is the addable shape supplied by the catalog, a product tier or a
// promotion.
type Item struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// Cart accumulates line items for a single session. Handlers run
// concurrently, so every operation takes the lock even though interactions
// are effectively serial for a single storefront user.
type Cart struct {
	mu    sync.Mutex
	lines []types.LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the item into the cart: an existing line with the same code
// gains one unit, otherwise a new line is appended with qty 1.
func (c *Cart) Add(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Code == item.Code {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, types.LineItem{
		Code:  item.Code,
		Name:  item.Name,
		Price: item.Price,
		Qty:   1,
	})
}

// AdjustQuantity changes the line's quantity by delta. A resulting quantity
// of zero or less deletes the line: the minus button on a single unit removes
// the product. Out-of-range indexes are no-ops.
func (c *Cart) AdjustQuantity(index, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines[index].Qty += delta
	if c.lines[index].Qty <= 0 {
		c.lines = append(c.lines[:index], c.lines[index+1:]...)
	}
}

// LineAt returns a copy of the line, answering the "would delete" query the
// UI raises before asking for confirmation.
func (c *Cart) LineAt(index int) (types.LineItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.lines) {
		return types.LineItem{}, false
	}
	return c.lines[index], true
}

// Remove deletes the line unconditionally; the caller has already collected
// the user's confirmation. Out-of-range indexes are no-ops.
func (c *Cart) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []types.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]types.LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums price*qty over the current lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	return types.SumLineItems(c.lines)
}

// Count returns the unit count across all lines, shown on the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Qty
	}
	return count
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Drain atomically snapshots the lines and total and empties the cart. The
// boolean is false, and nothing changes, when the cart is empty. Checkout
// uses this so finalization is a single step even under concurrent adds.
func (c *Cart) Drain() ([]types.LineItem, decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, decimal.Zero, false
	}
	lines := c.lines
	c.lines = nil
	return lines, types.SumLineItems(lines), true
}
