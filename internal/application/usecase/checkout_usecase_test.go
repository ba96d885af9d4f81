package usecase

import (
	"context"
	"errors"
	"testing"

	orderdom "boutique/internal/domain/order"
)

func checkoutFixture(t *testing.T, repo *fakeOrderRepo) (*Checkout, *CartStore, *fakeControl, *fakePanel, *fakeMsg) {
	t.Helper()

	cart := NewCartStore(&memCartRepo{}, &fakeCartView{}, &fakeIcons{})
	control := &fakeControl{}
	panel := &fakePanel{}
	msg := &fakeMsg{}
	u := NewCheckout(cart, repo, control, panel, msg)
	return u, cart, control, panel, msg
}

func TestCheckoutSubmitPlacesOrderAndClearsCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, cart, control, panel, msg := checkoutFixture(t, repo)

	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := u.Submit(context.Background(), CustomerInput{
		Name: "  Ada  ", Phone: "0123456789", Address: "1 High St",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("orders written = %d, want 1", len(repo.created))
	}
	o := repo.created[0]
	if o.ID == "" {
		t.Fatalf("order id not assigned")
	}
	if o.CustomerName != "Ada" {
		t.Fatalf("customer name = %q, want trimmed %q", o.CustomerName, "Ada")
	}
	if o.TotalPrice != 200 {
		t.Fatalf("order total = %v, want 200 (computed from the live cart)", o.TotalPrice)
	}
	if o.Status != orderdom.StatusPending {
		t.Fatalf("status = %q, want %q", o.Status, orderdom.StatusPending)
	}

	if cart.Len() != 0 {
		t.Fatalf("cart not cleared after success: len = %d", cart.Len())
	}
	if panel.closes != 1 {
		t.Fatalf("panel closes = %d, want 1", panel.closes)
	}
	if control.disabled {
		t.Fatalf("submit control left disabled")
	}
	if control.cycles != 1 {
		t.Fatalf("enable cycles = %d, want 1", control.cycles)
	}
	if len(msg.msgs) != 1 || msg.msgs[0] != "Order Placed Successfully!" {
		t.Fatalf("messages = %v, want the success confirmation", msg.msgs)
	}
}

func TestCheckoutValidationFailsBeforeAnyWrite(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, cart, control, _, msg := checkoutFixture(t, repo)
	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := u.Submit(context.Background(), CustomerInput{Name: "Ada", Phone: "   ", Address: "1 High St"})
	if !errors.Is(err, ErrMissingCustomerFields) {
		t.Fatalf("Submit = %v, want ErrMissingCustomerFields", err)
	}

	if len(repo.created) != 0 {
		t.Fatalf("validation failure reached the order store")
	}
	if cart.Len() != 1 {
		t.Fatalf("validation failure touched the cart")
	}
	if control.cycles != 0 {
		t.Fatalf("the control was cycled before validation passed")
	}
	if len(msg.msgs) != 1 || msg.msgs[0] != "Please fill in all details" {
		t.Fatalf("messages = %v, want the fill-in prompt", msg.msgs)
	}
}

func TestCheckoutEmptyCartIsRejected(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, _, _, _, msg := checkoutFixture(t, repo)

	err := u.Submit(context.Background(), CustomerInput{Name: "Ada", Phone: "0123", Address: "1 High St"})
	if !errors.Is(err, ErrCheckoutEmptyCart) {
		t.Fatalf("Submit = %v, want ErrCheckoutEmptyCart", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("empty-cart submit reached the order store")
	}
	if len(msg.msgs) != 1 || msg.msgs[0] != "Your bag is empty." {
		t.Fatalf("messages = %v, want the empty-bag notice", msg.msgs)
	}
}

func TestCheckoutRemoteFailureLeavesCartIntact(t *testing.T) {
	repo := &fakeOrderRepo{err: errors.New("firestore down")}
	u, cart, control, panel, msg := checkoutFixture(t, repo)
	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := u.Submit(context.Background(), CustomerInput{Name: "Ada", Phone: "0123", Address: "1 High St"})
	if err == nil {
		t.Fatalf("Submit succeeded against a failing store")
	}

	if cart.Len() != 1 {
		t.Fatalf("cart mutated on a failed write: len = %d", cart.Len())
	}
	if panel.closes != 0 {
		t.Fatalf("panel closed on a failed write")
	}
	if control.disabled {
		t.Fatalf("submit control left disabled after the failure")
	}
	if len(msg.msgs) != 1 || msg.msgs[0] != "Error: firestore down" {
		t.Fatalf("messages = %v, want the error notice", msg.msgs)
	}

	// the shopper may re-click after the failure
	repo.err = nil
	if err := u.Submit(context.Background(), CustomerInput{Name: "Ada", Phone: "0123", Address: "1 High St"}); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("retry did not place the order")
	}
}

func TestCheckoutSecondClickWhileInFlightIsRejected(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, cart, control, _, _ := checkoutFixture(t, repo)
	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	in := CustomerInput{Name: "Ada", Phone: "0123", Address: "1 High St"}

	var second error
	var labelDuring string
	repo.onCreate = func() {
		labelDuring = control.label
		second = u.Submit(context.Background(), in)
	}

	if err := u.Submit(context.Background(), in); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !errors.Is(second, ErrSubmissionInFlight) {
		t.Fatalf("in-flight Submit = %v, want ErrSubmissionInFlight", second)
	}
	if labelDuring != "Processing..." {
		t.Fatalf("control label during the write = %q, want %q", labelDuring, "Processing...")
	}
	if len(repo.created) != 1 {
		t.Fatalf("orders written = %d, want exactly 1", len(repo.created))
	}
}

type countingArchiver struct {
	calls int
	err   error
}

func (a *countingArchiver) Archive(ctx context.Context, o orderdom.Order) error {
	a.calls++
	return a.err
}

type countingNotifier struct {
	calls int
	err   error
}

func (n *countingNotifier) NotifyOrderPlaced(ctx context.Context, o orderdom.Order) error {
	n.calls++
	return n.err
}

func TestCheckoutPostCommitFailuresDoNotFailTheOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	u, cart, _, _, msg := checkoutFixture(t, repo)
	arch := &countingArchiver{err: errors.New("archive db away")}
	note := &countingNotifier{err: errors.New("smtp away")}
	u.WithArchiver(arch).WithNotifier(note)

	if err := cart.Add("p1", "Scarf", 100, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := u.Submit(context.Background(), CustomerInput{Name: "Ada", Phone: "0123", Address: "1 High St"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if arch.calls != 1 || note.calls != 1 {
		t.Fatalf("archive/notify calls = %d/%d, want 1/1", arch.calls, note.calls)
	}
	if cart.Len() != 0 {
		t.Fatalf("cart not cleared despite a placed order")
	}
	if len(msg.msgs) != 1 || msg.msgs[0] != "Order Placed Successfully!" {
		t.Fatalf("messages = %v, want only the success confirmation", msg.msgs)
	}
}
