// internal/adapters/in/console/view.go
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	cartdom "boutique/internal/domain/cart"
	catalogdom "boutique/internal/domain/catalog"
	iddom "boutique/internal/domain/identity"
)

const submitLabel = "Order Now"

// View renders the storefront surfaces to a writer. It satisfies every view
// port the usecases drive (cart, catalog, auth, submit control, panel,
// messages, theme).
//
// Controls are modeled the way the DOM original behaves: each auth render
// replaces the previously bound handler, and the stored binding is the only
// way to trigger the action.
type View struct {
	mu  sync.Mutex
	out io.Writer

	panelOpen  bool
	submitBusy bool
	submitText string
	theme      string

	onSignIn  func(credential string)
	onSignOut func()
}

func New(out io.Writer) *View {
	return &View{
		out:        out,
		submitText: submitLabel,
		theme:      "dark",
	}
}

// ----- CartView -----

func (v *View) RenderCart(items []cartdom.Item, total float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(items) == 0 {
		v.printf("-- bag --\n  Your bag is empty.\n")
		return
	}

	var b strings.Builder
	b.WriteString("-- bag --\n")
	for i, it := range items {
		fmt.Fprintf(&b, "  [%d] %s  %.2f x %d  (x remove)\n", i, it.Name, it.Price, it.Qty)
	}
	fmt.Fprintf(&b, "  total: %.2f\n", total)
	v.printf("%s", b.String())
}

// ----- CatalogView -----

func (v *View) RenderProducts(items []catalogdom.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var b strings.Builder
	b.WriteString("-- products --\n")
	for _, p := range items {
		fmt.Fprintf(&b, "  %s  %.2f  %s\n", p.Name, p.PriceNow, p.MainImage)
	}
	v.printf("%s", b.String())
}

func (v *View) RenderEmpty() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.printf("-- products --\n  No products available yet.\n")
}

func (v *View) RenderError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.printf("-- products --\n  Error loading products: %v\n", err)
}

// ----- PanelOpener -----

func (v *View) OpenCartPanel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelOpen = true
	v.printf("[panel] cart open\n")
}

func (v *View) CloseCartPanel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelOpen = false
	v.printf("[panel] cart closed\n")
}

// ----- SubmitControl -----

func (v *View) Disable(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitBusy = true
	v.submitText = label
}

func (v *View) Enable() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitBusy = false
	v.submitText = submitLabel
}

// ----- MessageSink -----

func (v *View) ShowMessage(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.printf("! %s\n", msg)
}

// ----- AuthView -----

func (v *View) RenderProfile(u iddom.User, onSignOut func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onSignOut = onSignOut
	v.onSignIn = nil
	v.printf("-- profile --\n  %s <%s>\n  [Logout]\n", u.Label(), u.Email)
}

func (v *View) RenderSignIn(onSignIn func(credential string)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onSignIn = onSignIn
	v.onSignOut = nil
	v.printf("-- profile --\n  [Login with Google]\n")
}

// ----- ThemeView -----

func (v *View) ApplyTheme(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.theme = name
	v.printf("[theme] %s\n", name)
}

// ----- IconRefresher -----

// RefreshIcons is a no-op on the console surface: glyphs render inline, so
// there is no placeholder pass. Kept so the render pipeline matches a
// markup-scanning icon set.
func (v *View) RefreshIcons() {}

// ----- control access (driver/test surface) -----

// ClickSignIn invokes the currently bound sign-in handler.
func (v *View) ClickSignIn(credential string) {
	v.mu.Lock()
	fn := v.onSignIn
	v.mu.Unlock()
	if fn != nil {
		fn(credential)
	}
}

// ClickSignOut invokes the currently bound sign-out handler.
func (v *View) ClickSignOut() {
	v.mu.Lock()
	fn := v.onSignOut
	v.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SubmitState exposes the control state (busy flag and label).
func (v *View) SubmitState() (bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitBusy, v.submitText
}

// PanelOpenState reports whether the cart panel is open.
func (v *View) PanelOpenState() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panelOpen
}

func (v *View) printf(format string, args ...any) {
	if v.out == nil {
		return
	}
	fmt.Fprintf(v.out, format, args...)
}
