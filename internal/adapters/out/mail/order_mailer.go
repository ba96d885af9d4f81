// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderdom "boutique/internal/domain/order"
)

// OrderMailer notifies the store operator that an order came in.
// It runs after the order write succeeded; a mail failure never touches the
// order (callers log and move on).
type OrderMailer struct {
	client EmailClient
	from   string
	to     string
}

func NewOrderMailer(client EmailClient, from, to string) *OrderMailer {
	return &OrderMailer{
		client: client,
		from:   strings.TrimSpace(from),
		to:     strings.TrimSpace(to),
	}
}

func (m *OrderMailer) NotifyOrderPlaced(ctx context.Context, o orderdom.Order) error {
	if m == nil || m.client == nil {
		return errors.New("order_mailer: mail client is not configured")
	}

	subject := fmt.Sprintf("New order %s (%s)", o.ID, o.CustomerName)

	var b strings.Builder
	fmt.Fprintf(&b, "Order:    %s\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone:    %s\n", o.Phone)
	fmt.Fprintf(&b, "Address:  %s\n", o.Address)
	fmt.Fprintf(&b, "Status:   %s\n\n", o.Status)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %s x%d @ %.2f\n", it.Name, it.Qty, it.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", o.TotalPrice)

	return m.client.Send(ctx, m.from, m.to, subject, b.String())
}
