// internal/application/usecase/theme_store.go
package usecase

import "log"

const (
	themeKey   = "theme"
	themeDark  = "dark"
	themeLight = "light"
)

// ThemeStore keeps the shopper's theme preference in durable storage.
// Unknown or absent values fall back to dark.
type ThemeStore struct {
	store KV
	view  ThemeView
	icons IconRefresher
}

func NewThemeStore(store KV, view ThemeView, icons IconRefresher) *ThemeStore {
	return &ThemeStore{store: store, view: view, icons: icons}
}

// Current returns the active theme name.
func (t *ThemeStore) Current() string {
	if t == nil || t.store == nil {
		return themeDark
	}
	if v, ok := t.store.Get(themeKey); ok && v == themeLight {
		return themeLight
	}
	return themeDark
}

// Apply pushes the current theme to the view (startup path).
func (t *ThemeStore) Apply() {
	if t == nil || t.view == nil {
		return
	}
	t.view.ApplyTheme(t.Current())
	if t.icons != nil {
		t.icons.RefreshIcons()
	}
}

// Toggle flips the theme, persists it and re-applies the view.
func (t *ThemeStore) Toggle() string {
	next := themeLight
	if t.Current() == themeLight {
		next = themeDark
	}

	if t.store != nil {
		if err := t.store.Set(themeKey, next); err != nil {
			log.Printf("[theme_store] WARN: persist failed: %v", err)
		}
	}
	if t.view != nil {
		t.view.ApplyTheme(next)
	}
	if t.icons != nil {
		t.icons.RefreshIcons()
	}
	return next
}
