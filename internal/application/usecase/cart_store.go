// internal/application/usecase/cart_store.go
package usecase

import (
	"log"
	"sync"

	cartdom "boutique/internal/domain/cart"
)

// CartStore owns the in-memory cart and its single persistence boundary.
//
// Every mutation follows the same bracket: mutate, persist write-through,
// re-render, refresh icons. Storage failures are logged and swallowed; the
// in-memory cart stays authoritative for the rest of the session.
type CartStore struct {
	mu    sync.Mutex
	cart  *cartdom.Cart
	repo  cartdom.Repository
	view  CartView
	icons IconRefresher
}

func NewCartStore(repo cartdom.Repository, view CartView, icons IconRefresher) *CartStore {
	return &CartStore{
		cart:  cartdom.New(),
		repo:  repo,
		view:  view,
		icons: icons,
	}
}

// Load replaces the in-memory cart with the persisted one and renders it.
// Called once at startup; absent or unreadable storage loads as empty.
func (s *CartStore) Load() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.repo != nil {
		s.cart = s.repo.Load()
	}
	s.mu.Unlock()

	s.render()
}

// Add merges the product into the cart (existing line: Qty+1).
func (s *CartStore) Add(productID, name string, price float64, image string) error {
	if s == nil {
		return cartdom.ErrInvalidItem
	}

	s.mu.Lock()
	err := s.cart.Add(productID, name, price, image)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.persist()
	s.render()
	return nil
}

// RemoveAt drops the line at idx; a stale index is a no-op but still
// persists and re-renders (the view asked for a refresh either way).
func (s *CartStore) RemoveAt(idx int) {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.cart.RemoveAt(idx)
	s.mu.Unlock()

	s.persist()
	s.render()
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()

	s.persist()
	s.render()
}

// Total is the current cart total.
func (s *CartStore) Total() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Items returns a snapshot of the current lines.
func (s *CartStore) Items() []cartdom.Item {
	if s == nil {
		return []cartdom.Item{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Len returns the number of lines.
func (s *CartStore) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

func (s *CartStore) persist() {
	if s.repo == nil {
		return
	}
	s.mu.Lock()
	c := &cartdom.Cart{Items: s.cart.Snapshot()}
	s.mu.Unlock()

	if err := s.repo.Save(c); err != nil {
		log.Printf("[cart_store] WARN: persist failed: %v (in-memory cart stays authoritative)", err)
	}
}

func (s *CartStore) render() {
	s.mu.Lock()
	items := s.cart.Snapshot()
	total := s.cart.Total()
	s.mu.Unlock()

	if s.view != nil {
		s.view.RenderCart(items, total)
	}
	if s.icons != nil {
		s.icons.RefreshIcons()
	}
}
