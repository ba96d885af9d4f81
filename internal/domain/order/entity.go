// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	cartdom "boutique/internal/domain/cart"
)

// StatusPending is the only status this layer ever writes. Later transitions
// belong to the fulfillment side.
const StatusPending = "Pending"

var (
	ErrInvalidID           = errors.New("order: invalid id")
	ErrInvalidCustomerName = errors.New("order: invalid customer name")
	ErrInvalidPhone        = errors.New("order: invalid phone")
	ErrInvalidAddress      = errors.New("order: invalid address")
	ErrEmptyItems          = errors.New("order: empty items")
	ErrInvalidItem         = errors.New("order: invalid item snapshot")
)

// Order is the write-once record submitted at checkout.
// Items is a snapshot of the cart at submission time; TotalPrice is computed
// from that snapshot and never trusted from outside input. CreatedAt is
// assigned by the store on write.
type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string

	Items      []cartdom.Item
	TotalPrice float64
	Status     string

	CreatedAt time.Time
}

// New builds a pending order from customer details and a cart snapshot.
func New(id, customerName, phone, address string, items []cartdom.Item) (Order, error) {
	o := Order{
		ID:           strings.TrimSpace(id),
		CustomerName: strings.TrimSpace(customerName),
		Phone:        strings.TrimSpace(phone),
		Address:      strings.TrimSpace(address),
		Items:        cloneItems(items),
		Status:       StatusPending,
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}

	total := 0.0
	for _, it := range o.Items {
		total += it.Price * float64(it.Qty)
	}
	o.TotalPrice = total

	return o, nil
}

func (o Order) validate() error {
	if o.ID == "" {
		return ErrInvalidID
	}
	if o.CustomerName == "" {
		return ErrInvalidCustomerName
	}
	if o.Phone == "" {
		return ErrInvalidPhone
	}
	if o.Address == "" {
		return ErrInvalidAddress
	}
	if len(o.Items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return ErrInvalidItem
		}
		if it.Qty <= 0 {
			return ErrInvalidItem
		}
		if it.Price < 0 {
			return ErrInvalidItem
		}
	}
	return nil
}

func cloneItems(items []cartdom.Item) []cartdom.Item {
	if len(items) == 0 {
		return []cartdom.Item{}
	}
	out := make([]cartdom.Item, len(items))
	copy(out, items)
	return out
}
