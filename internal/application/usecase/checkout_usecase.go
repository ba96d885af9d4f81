// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	orderdom "boutique/internal/domain/order"
)

var (
	ErrCheckoutNotConfigured = errors.New("checkout: order repository is not configured")
	ErrMissingCustomerFields = errors.New("checkout: name, phone and address are required")
	ErrCheckoutEmptyCart     = errors.New("checkout: cart is empty")
	ErrSubmissionInFlight    = errors.New("checkout: a submission is already in flight")
)

const processingLabel = "Processing..."

// CustomerInput is what the checkout form collects.
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// Checkout runs the order submission transaction.
//
// The submit-control disable/enable bracket is the only mutual exclusion in
// the system: it blocks the re-entrant second click while the write is in
// flight. Submission order is fixed — lock, compute total, single remote
// write, then (success only) confirm + clear cart + close panel, with the
// control restored on every path.
type Checkout struct {
	cart    *CartStore
	orders  orderdom.Repository
	archive orderdom.Archiver // optional
	mailer  OrderNotifier     // optional
	control SubmitControl
	panel   PanelOpener
	msg     MessageSink

	newID    func() string
	inFlight atomic.Bool
}

func NewCheckout(
	cart *CartStore,
	orders orderdom.Repository,
	control SubmitControl,
	panel PanelOpener,
	msg MessageSink,
) *Checkout {
	return &Checkout{
		cart:    cart,
		orders:  orders,
		control: control,
		panel:   panel,
		msg:     msg,
		newID:   uuid.NewString,
	}
}

// WithArchiver attaches the best-effort secondary order store.
func (u *Checkout) WithArchiver(a orderdom.Archiver) *Checkout {
	u.archive = a
	return u
}

// WithNotifier attaches the best-effort operator notification.
func (u *Checkout) WithNotifier(n OrderNotifier) *Checkout {
	u.mailer = n
	return u
}

// Submit validates the input and writes exactly one order document.
//
// Validation failures abort synchronously before any lock or remote call.
// On remote failure the cart is untouched and the user may re-click.
func (u *Checkout) Submit(ctx context.Context, in CustomerInput) error {
	if u == nil || u.cart == nil || u.orders == nil {
		return ErrCheckoutNotConfigured
	}

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" || phone == "" || address == "" {
		u.show("Please fill in all details")
		return ErrMissingCustomerFields
	}

	if !u.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	if u.control != nil {
		u.control.Disable(processingLabel)
	}
	defer func() {
		if u.control != nil {
			u.control.Enable()
		}
		u.inFlight.Store(false)
	}()

	// total and items come from the live cart, never from the caller
	items := u.cart.Items()
	o, err := orderdom.New(u.newID(), name, phone, address, items)
	if err != nil {
		if errors.Is(err, orderdom.ErrEmptyItems) {
			u.show("Your bag is empty.")
			return ErrCheckoutEmptyCart
		}
		u.show("Error: " + err.Error())
		return err
	}

	if err := u.orders.Create(ctx, o); err != nil {
		u.show("Error: " + err.Error())
		return fmt.Errorf("checkout: order write failed: %w", err)
	}

	u.show("Order Placed Successfully!")
	u.cart.Clear()
	if u.panel != nil {
		u.panel.CloseCartPanel()
	}

	// post-commit extras: the order is placed, failures here only log
	if u.archive != nil {
		if err := u.archive.Archive(ctx, o); err != nil {
			log.Printf("[checkout_uc] WARN: archive failed orderId=%s: %v", o.ID, err)
		}
	}
	if u.mailer != nil {
		if err := u.mailer.NotifyOrderPlaced(ctx, o); err != nil {
			log.Printf("[checkout_uc] WARN: operator notification failed orderId=%s: %v", o.ID, err)
		}
	}

	log.Printf("[checkout_uc] OK: order placed orderId=%s items=%d total=%.2f", o.ID, len(o.Items), o.TotalPrice)
	return nil
}

func (u *Checkout) show(msg string) {
	if u.msg != nil {
		u.msg.ShowMessage(msg)
	}
}
