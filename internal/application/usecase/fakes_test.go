package usecase

import (
	"context"
	"errors"

	cartdom "boutique/internal/domain/cart"
	catalogdom "boutique/internal/domain/catalog"
	iddom "boutique/internal/domain/identity"
	orderdom "boutique/internal/domain/order"
)

// ---- view fakes ----

type fakeCartView struct {
	renders int
	items   []cartdom.Item
	total   float64
}

func (v *fakeCartView) RenderCart(items []cartdom.Item, total float64) {
	v.renders++
	v.items = items
	v.total = total
}

type fakeIcons struct{ refreshes int }

func (i *fakeIcons) RefreshIcons() { i.refreshes++ }

type fakeCatalogView struct {
	products [][]catalogdom.Product
	empties  int
	errors   []error
}

func (v *fakeCatalogView) RenderProducts(items []catalogdom.Product) {
	v.products = append(v.products, items)
}
func (v *fakeCatalogView) RenderEmpty()          { v.empties++ }
func (v *fakeCatalogView) RenderError(err error) { v.errors = append(v.errors, err) }

type fakePanel struct {
	opens  int
	closes int
}

func (p *fakePanel) OpenCartPanel()  { p.opens++ }
func (p *fakePanel) CloseCartPanel() { p.closes++ }

type fakeControl struct {
	disabled bool
	label    string
	cycles   int
}

func (c *fakeControl) Disable(label string) {
	c.disabled = true
	c.label = label
}

func (c *fakeControl) Enable() {
	c.disabled = false
	c.label = "Order Now"
	c.cycles++
}

type fakeMsg struct{ msgs []string }

func (m *fakeMsg) ShowMessage(msg string) { m.msgs = append(m.msgs, msg) }

// ---- port fakes ----

type fakeFeed struct {
	onSnapshot func([]catalogdom.Product)
	onError    func(error)
	stopped    int
	subErr     error
}

func (f *fakeFeed) Subscribe(ctx context.Context, onSnapshot func([]catalogdom.Product), onError func(error)) (func(), error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	f.onSnapshot = onSnapshot
	f.onError = onError
	return func() { f.stopped++ }, nil
}

type fakeOrderRepo struct {
	created []orderdom.Order
	err     error

	// onCreate runs inside Create, before the result is decided; used to
	// model a second click arriving while the write is in flight.
	onCreate func()
}

func (r *fakeOrderRepo) Create(ctx context.Context, o orderdom.Order) error {
	if r.onCreate != nil {
		r.onCreate()
	}
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, o)
	return nil
}

type fakeCounter struct {
	calls int
	err   error
}

func (c *fakeCounter) IncrementTotalVisitors(ctx context.Context) error {
	c.calls++
	return c.err
}

type memCartRepo struct {
	saved *cartdom.Cart
	saves int
}

func (r *memCartRepo) Load() *cartdom.Cart {
	if r.saved == nil {
		return cartdom.New()
	}
	return cartdom.FromItems(r.saved.Items)
}

func (r *memCartRepo) Save(c *cartdom.Cart) error {
	r.saves++
	r.saved = &cartdom.Cart{Items: c.Snapshot()}
	return nil
}

type memKV struct {
	m    map[string]string
	sets int
	err  error
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(key string) (string, bool) {
	v, ok := k.m[key]
	return v, ok
}

func (k *memKV) Set(key, value string) error {
	k.sets++
	if k.err != nil {
		return k.err
	}
	k.m[key] = value
	return nil
}

type fakeThemeView struct{ applied []string }

func (v *fakeThemeView) ApplyTheme(name string) { v.applied = append(v.applied, name) }

type failingCartRepo struct{ loads int }

func (r *failingCartRepo) Load() *cartdom.Cart { r.loads++; return cartdom.New() }
func (r *failingCartRepo) Save(*cartdom.Cart) error {
	return errors.New("disk on fire")
}

// ---- identity fakes ----

type fakeProvider struct {
	observer func(*iddom.User)
	user     iddom.User
	signErr  error
	outs     int
}

func (p *fakeProvider) SignIn(ctx context.Context, credential string) (iddom.User, error) {
	if p.signErr != nil {
		return iddom.User{}, p.signErr
	}
	if p.observer != nil {
		u := p.user
		p.observer(&u)
	}
	return p.user, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.outs++
	if p.observer != nil {
		p.observer(nil)
	}
	return nil
}

func (p *fakeProvider) OnSessionChange(fn func(*iddom.User)) {
	p.observer = fn
	fn(nil) // current state delivered on registration
}

type fakeAuthView struct {
	profiles  []iddom.User
	signIns   int
	msgs      []string
	onSignIn  func(string)
	onSignOut func()
}

func (v *fakeAuthView) RenderProfile(u iddom.User, onSignOut func()) {
	v.profiles = append(v.profiles, u)
	v.onSignOut = onSignOut
	v.onSignIn = nil
}

func (v *fakeAuthView) RenderSignIn(onSignIn func(string)) {
	v.signIns++
	v.onSignIn = onSignIn
	v.onSignOut = nil
}

func (v *fakeAuthView) ShowMessage(msg string) { v.msgs = append(v.msgs, msg) }
