package cart

import (
	"errors"
	"fmt"

	"github.com/kasir-id/backend-kasir/internal/money"
	"github.com/kasir-id/backend-kasir/internal/pricing"
)

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// Product identifies a purchasable good. Products compare structurally: two
// products with the same title and price address the same cart entry.
type Product struct {
	Title string `json:"title"`
	Price int64  `json:"price"`
}

// LineItem pairs a product with a quantity and zero or more discount
// conditions.
type LineItem struct {
	Product    Product             `json:"product"`
	Quantity   int64               `json:"quantity"`
	Conditions []pricing.Condition `json:"conditions,omitempty"`
}

// FullPrice returns the undiscounted price for the line.
func (li LineItem) FullPrice() money.Money {
	return money.New(li.Product.Price * li.Quantity)
}

// Payable returns the lowest price any single attached condition produces,
// or the full price when none are attached. Conditions never stack.
func (li LineItem) Payable() money.Money {
	best := li.FullPrice()
	for _, c := range li.Conditions {
		if p := pricing.Evaluate(li.Product.Price, li.Quantity, c); p.LessThan(best) {
			best = p
		}
	}
	return best
}

// Snapshot is a point-in-time view of a cart's contents and total.
type Snapshot struct {
	Total money.Money
	Items []LineItem
}

// Summary extends a snapshot with the formatted total.
type Summary struct {
	Snapshot
	Formatted string
}

// Cart holds an ordered list of line items for a single owner. The type does
// no locking of its own; callers that share a cart must serialise access.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add validates the item and appends it. When a line for the same product
// already exists it is replaced entirely, never merged: the filtered list
// plus the new item is assigned in one step so there is no partial state.
func (c *Cart) Add(item LineItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	if item.Product.Price < 0 {
		return fmt.Errorf("product price must not be negative: %w", ErrInvalidInput)
	}
	for i, cond := range item.Conditions {
		if err := cond.Validate(); err != nil {
			return fmt.Errorf("condition %d: %w", i, err)
		}
	}
	next := make([]LineItem, 0, len(c.items)+1)
	for _, existing := range c.items {
		if existing.Product != item.Product {
			next = append(next, existing)
		}
	}
	c.items = append(next, item)
	return nil
}

// Remove drops the line item matching the product. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(product Product) {
	next := c.items[:0]
	for _, existing := range c.items {
		if existing.Product != product {
			next = append(next, existing)
		}
	}
	c.items = next
}

// Total sums the payable price of every line item. An empty cart totals zero.
func (c *Cart) Total() money.Money {
	total := money.Zero
	for _, item := range c.items {
		total = total.Add(item.Payable())
	}
	return total
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len reports the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Summary returns a read-only snapshot with the total rendered by the
// formatter. The cart is not mutated.
func (c *Cart) Summary(f money.Formatter) Summary {
	total := c.Total()
	return Summary{
		Snapshot:  Snapshot{Total: total, Items: c.Items()},
		Formatted: f.Format(total),
	}
}

// Checkout captures the snapshot and clears the cart in one step. Callers
// never observe a total computed from a partially cleared cart.
func (c *Cart) Checkout() Snapshot {
	snap := Snapshot{Total: c.Total(), Items: c.Items()}
	c.items = nil
	return snap
}
