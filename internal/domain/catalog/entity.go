// internal/domain/catalog/entity.go
package catalog

import "strings"

// Product is the read model of one catalog document.
// The catalog collection is owned by the remote store; this layer never
// writes it.
type Product struct {
	ID        string  `json:"id" firestore:"id"`
	Name      string  `json:"name" firestore:"name"`
	PriceNow  float64 `json:"price_now" firestore:"price_now"`
	MainImage string  `json:"main_image" firestore:"main_image"`

	// Visible defaults to true: a document without the field is shown.
	Visible bool `json:"visible" firestore:"visible"`
}

// Valid reports whether the product can be offered for sale.
func (p Product) Valid() bool {
	return strings.TrimSpace(p.ID) != "" && p.PriceNow >= 0
}

// VisibleOnly filters a snapshot down to the sellable, visible products,
// preserving feed order.
func VisibleOnly(items []Product) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if !p.Visible || !p.Valid() {
			continue
		}
		out = append(out, p)
	}
	return out
}
