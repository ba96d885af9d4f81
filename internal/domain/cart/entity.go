// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
)

var (
	ErrInvalidItem = errors.New("cart: invalid item")
)

// Item represents "one line item" in the cart.
// Identity is ProductID (the catalog document id).
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"img"`
	Qty       int     `json:"qty"`
}

// Cart is the shopper's ordered list of line items.
//   - at most one Item per ProductID
//   - insertion order is preserved; a quantity change never reorders
//   - the zero value is a usable empty cart
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// FromItems builds a cart from a persisted item list.
// Entries are merged by ProductID (first occurrence keeps its position) and
// invalid entries are dropped, so a partially damaged blob still loads.
func FromItems(items []Item) *Cart {
	c := New()
	for _, it := range items {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Qty <= 0 || it.Price < 0 {
			continue
		}
		idx := c.indexOf(pid)
		if idx >= 0 {
			c.Items[idx].Qty += it.Qty
			continue
		}
		it.ProductID = pid
		c.Items = append(c.Items, it)
	}
	return c
}

// Add merges by ProductID: an existing line gets Qty+1, a new product is
// appended with Qty=1.
func (c *Cart) Add(productID, name string, price float64, image string) error {
	if c == nil {
		return ErrInvalidItem
	}

	pid := strings.TrimSpace(productID)
	if pid == "" || price < 0 {
		return ErrInvalidItem
	}

	if idx := c.indexOf(pid); idx >= 0 {
		c.Items[idx].Qty++
		return nil
	}

	c.Items = append(c.Items, Item{
		ProductID: pid,
		Name:      strings.TrimSpace(name),
		Price:     price,
		Image:     strings.TrimSpace(image),
		Qty:       1,
	})
	return nil
}

// RemoveAt removes the line at idx. Out-of-range is a no-op: the index may
// come from a view rendered before a concurrent mutation.
func (c *Cart) RemoveAt(idx int) {
	if c == nil || idx < 0 || idx >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// Clear resets the cart to an empty list.
func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.Items = []Item{}
}

// Total is the sum of Price*Qty over all lines; 0 for an empty cart.
func (c *Cart) Total() float64 {
	if c == nil {
		return 0
	}
	sum := 0.0
	for _, it := range c.Items {
		sum += it.Price * float64(it.Qty)
	}
	return sum
}

// Len returns the number of lines (not the summed quantity).
func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// Snapshot returns a copy of the current lines, safe to hand to an order.
func (c *Cart) Snapshot() []Item {
	if c == nil || len(c.Items) == 0 {
		return []Item{}
	}
	out := make([]Item, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
