// internal/domain/cart/repository_port.go
package cart

// Repository persists the cart between sessions.
//
// Load never fails the caller: absent or unreadable data comes back as an
// empty cart. Save errors are returned so the caller can log them, but the
// in-memory cart stays authoritative either way.
type Repository interface {
	Load() *Cart
	Save(c *Cart) error
}
