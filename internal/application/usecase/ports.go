// internal/application/usecase/ports.go
package usecase

import (
	"context"

	cartdom "boutique/internal/domain/cart"
	catalogdom "boutique/internal/domain/catalog"
	iddom "boutique/internal/domain/identity"
	orderdom "boutique/internal/domain/order"
)

// Outbound view ports. The concrete surface (console adapter here, DOM in the
// original storefront) is plumbing; the contracts below are what the
// usecases guarantee to drive.

// IconRefresher re-scans freshly rendered markup and materializes icon
// placeholders. It must be idempotent and must run after every render that
// introduces new placeholders: per-row delete controls are invisible until
// the scan happens.
type IconRefresher interface {
	RefreshIcons()
}

// CartView shows the current cart contents and total.
type CartView interface {
	RenderCart(items []cartdom.Item, total float64)
}

// CatalogView shows the product list. Empty snapshots and feed errors get
// explicit placeholders, never a bare empty container.
type CatalogView interface {
	RenderProducts(items []catalogdom.Product)
	RenderEmpty()
	RenderError(err error)
}

// PanelOpener opens and closes the cart panel.
type PanelOpener interface {
	OpenCartPanel()
	CloseCartPanel()
}

// SubmitControl is the checkout control. Disable swaps in a busy label;
// Enable restores the original one.
type SubmitControl interface {
	Disable(label string)
	Enable()
}

// MessageSink surfaces a user-facing message (the original's alert).
type MessageSink interface {
	ShowMessage(msg string)
}

// AuthView renders identity-dependent UI. The handlers passed to each render
// are freshly bound on every call: the rendered control is recreated, not
// reused, so an old binding is dead the moment a new render happens.
type AuthView interface {
	RenderProfile(u iddom.User, onSignOut func())
	RenderSignIn(onSignIn func(credential string))
	ShowMessage(msg string)
}

// ThemeView applies the active theme name to the rendered surface.
type ThemeView interface {
	ApplyTheme(name string)
}

// KV is the string key-value surface the usecases persist small flags and
// preferences through (localstore.Store satisfies it).
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ImageResolver rewrites a stored catalog image ref into a browsable URL.
type ImageResolver interface {
	Resolve(ctx context.Context, stored string) string
}

// VisitorCounter applies one atomic increment to the site visitor counter.
type VisitorCounter interface {
	IncrementTotalVisitors(ctx context.Context) error
}

// OrderNotifier tells the operator about a submitted order (best-effort).
type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, o orderdom.Order) error
}
