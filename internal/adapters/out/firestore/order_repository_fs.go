// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	cartdom "boutique/internal/domain/cart"
	orderdom "boutique/internal/domain/order"
)

const defaultOrdersCollection = "orders"

// OrderRepositoryFS implements order.Repository on Firestore.
//
// Collection design:
// - collection: orders
// - docId: order.ID (assigned by the caller, write-once)
// - createdAt: server timestamp
type OrderRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client, Collection: defaultOrdersCollection}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	name := strings.TrimSpace(r.Collection)
	if name == "" {
		name = defaultOrdersCollection
	}
	return r.Client.Collection(name)
}

// Create writes the order as a single document. Doc.Create (not Set) keeps
// the write-once contract: a duplicate id fails instead of overwriting.
func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(o.ID)
	if id == "" {
		return orderdom.ErrInvalidID
	}

	_, err := r.col().Doc(id).Create(ctx, orderDocFromDomain(o))
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	CustomerName string         `firestore:"customer_name"`
	Phone        string         `firestore:"phone"`
	Address      string         `firestore:"address"`
	Items        []orderItemDoc `firestore:"items"`
	TotalPrice   float64        `firestore:"total_price"`
	Status       string         `firestore:"status"`
	CreatedAt    time.Time      `firestore:"createdAt,serverTimestamp"`
}

type orderItemDoc struct {
	ID    string  `firestore:"id"`
	Name  string  `firestore:"name"`
	Price float64 `firestore:"price"`
	Img   string  `firestore:"img"`
	Qty   int     `firestore:"qty"`
}

func orderDocFromDomain(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDocFromDomain(it))
	}
	return orderDoc{
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Items:        items,
		TotalPrice:   o.TotalPrice,
		Status:       o.Status,
		// CreatedAt stays zero: serverTimestamp fills it on write.
	}
}

func orderItemDocFromDomain(it cartdom.Item) orderItemDoc {
	return orderItemDoc{
		ID:    it.ProductID,
		Name:  it.Name,
		Price: it.Price,
		Img:   it.Image,
		Qty:   it.Qty,
	}
}
