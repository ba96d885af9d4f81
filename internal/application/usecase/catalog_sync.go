// internal/application/usecase/catalog_sync.go
package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	catalogdom "boutique/internal/domain/catalog"
)

var (
	ErrCatalogNotConfigured  = errors.New("catalog_sync: feed or view is not configured")
	ErrCatalogAlreadyRunning = errors.New("catalog_sync: already subscribed")
)

// CatalogSync mirrors the remote catalog feed into the product view.
//
// One subscription per Start; every snapshot fully replaces the rendered
// list. A feed error renders an error placeholder and ends the stream — the
// next Start is the only retry path.
type CatalogSync struct {
	feed   catalogdom.Feed
	cart   *CartStore
	view   CatalogView
	panel  PanelOpener
	icons  IconRefresher
	images ImageResolver

	mu   sync.Mutex
	stop func()
}

func NewCatalogSync(
	feed catalogdom.Feed,
	cart *CartStore,
	view CatalogView,
	panel PanelOpener,
	icons IconRefresher,
	images ImageResolver,
) *CatalogSync {
	return &CatalogSync{
		feed:   feed,
		cart:   cart,
		view:   view,
		panel:  panel,
		icons:  icons,
		images: images,
	}
}

// Start subscribes to the feed. Snapshots are rendered until the stream ends
// (ctx cancel, Stop, or a feed error).
func (s *CatalogSync) Start(ctx context.Context) error {
	if s == nil || s.feed == nil || s.view == nil {
		return ErrCatalogNotConfigured
	}

	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return ErrCatalogAlreadyRunning
	}
	s.mu.Unlock()

	stop, err := s.feed.Subscribe(ctx,
		func(items []catalogdom.Product) { s.applySnapshot(ctx, items) },
		func(err error) {
			log.Printf("[catalog_sync] feed error: %v (not retrying)", err)
			s.view.RenderError(err)
		},
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()
	return nil
}

// Stop cancels the current subscription (safe without one).
func (s *CatalogSync) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	stop := s.stop
	s.stop = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// AddToCart is the action bound to each rendered product card: add the item
// and open the cart panel.
func (s *CatalogSync) AddToCart(p catalogdom.Product) {
	if s == nil || s.cart == nil {
		return
	}
	if err := s.cart.Add(p.ID, p.Name, p.PriceNow, p.MainImage); err != nil {
		log.Printf("[catalog_sync] WARN: add to cart rejected id=%q: %v", p.ID, err)
		return
	}
	if s.panel != nil {
		s.panel.OpenCartPanel()
	}
}

// applySnapshot replaces the rendered list with the snapshot contents.
// An empty snapshot gets the explicit "no products" placeholder; hidden
// items are filtered after that check, matching the source feed's contract.
func (s *CatalogSync) applySnapshot(ctx context.Context, items []catalogdom.Product) {
	if len(items) == 0 {
		s.view.RenderEmpty()
		return
	}

	visible := catalogdom.VisibleOnly(items)
	if s.images != nil {
		for i := range visible {
			visible[i].MainImage = s.images.Resolve(ctx, visible[i].MainImage)
		}
	}

	s.view.RenderProducts(visible)
	if s.icons != nil {
		s.icons.RefreshIcons()
	}
}
