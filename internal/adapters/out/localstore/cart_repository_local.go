// internal/adapters/out/localstore/cart_repository_local.go
package localstore

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	cartdom "boutique/internal/domain/cart"
)

const defaultCartKey = "bag"

// CartRepositoryLocal implements cart.Repository over a Store.
//
// The persisted shape is a bare JSON array of line items (the blob the
// original storefront kept under the "bag" key), not the domain struct.
type CartRepositoryLocal struct {
	store Store
	key   string
}

func NewCartRepositoryLocal(store Store) *CartRepositoryLocal {
	return &CartRepositoryLocal{store: store, key: defaultCartKey}
}

func NewCartRepositoryLocalWithKey(store Store, key string) *CartRepositoryLocal {
	k := strings.TrimSpace(key)
	if k == "" {
		k = defaultCartKey
	}
	return &CartRepositoryLocal{store: store, key: k}
}

// Load returns the persisted cart, or an empty cart when the blob is absent
// or unparseable. It never fails the caller.
func (r *CartRepositoryLocal) Load() *cartdom.Cart {
	if r == nil || r.store == nil {
		return cartdom.New()
	}

	raw, ok := r.store.Get(r.key)
	if !ok || strings.TrimSpace(raw) == "" {
		return cartdom.New()
	}

	var items []itemDoc
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[cart_repository_local] WARN: stored cart is unreadable: %v (using empty cart)", err)
		return cartdom.New()
	}

	dom := make([]cartdom.Item, 0, len(items))
	for _, it := range items {
		dom = append(dom, it.toDomain())
	}
	return cartdom.FromItems(dom)
}

// Save writes the full cart back under the cart key.
func (r *CartRepositoryLocal) Save(c *cartdom.Cart) error {
	if r == nil || r.store == nil {
		return errors.New("cart_repository_local: store is nil")
	}

	items := []itemDoc{}
	if c != nil {
		for _, it := range c.Items {
			items = append(items, itemDocFromDomain(it))
		}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(r.key, string(raw))
}

// -----------------------------------------
// Storage DTO
// -----------------------------------------

type itemDoc struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
	Qty   int     `json:"qty"`
}

func itemDocFromDomain(it cartdom.Item) itemDoc {
	return itemDoc{
		ID:    it.ProductID,
		Name:  it.Name,
		Price: it.Price,
		Img:   it.Image,
		Qty:   it.Qty,
	}
}

func (d itemDoc) toDomain() cartdom.Item {
	return cartdom.Item{
		ProductID: d.ID,
		Name:      d.Name,
		Price:     d.Price,
		Image:     d.Img,
		Qty:       d.Qty,
	}
}
