// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"

	"boutique/internal/adapters/in/console"
	dbadapters "boutique/internal/adapters/out/db"
	fsadapters "boutique/internal/adapters/out/firestore"
	gcsadapters "boutique/internal/adapters/out/gcs"
	idadapters "boutique/internal/adapters/out/identity"
	"boutique/internal/adapters/out/localstore"
	mailadapters "boutique/internal/adapters/out/mail"
	"boutique/internal/application/usecase"
)

const localStoreFile = "storage.json"

// Container wires the storefront: local stores, remote adapters, usecases
// and the console view.
type Container struct {
	View *console.View

	Cart     *usecase.CartStore
	Catalog  *usecase.CatalogSync
	Checkout *usecase.Checkout
	Visitors *usecase.VisitorTracker
	Auth     *usecase.AuthSessionManager
	Theme    *usecase.ThemeStore
}

func NewContainer(ctx context.Context, infra *Infra, out io.Writer) (*Container, error) {
	if infra == nil || infra.Firestore == nil {
		return nil, errors.New("di.container: infra is not initialized")
	}

	view := console.New(out)

	// local storage (durable + session scoped)
	durable, err := localstore.NewFileStore(filepath.Join(infra.Config.DataDir, localStoreFile))
	if err != nil {
		return nil, err
	}
	session := localstore.NewSessionStore()

	// cart
	cartRepo := localstore.NewCartRepositoryLocal(durable)
	cart := usecase.NewCartStore(cartRepo, view, view)

	// catalog
	var images usecase.ImageResolver
	if infra.GCS != nil {
		images = gcsadapters.NewProductImageResolverWithProbe(infra.Config.ProductImageBucket, infra.GCS)
	} else {
		images = gcsadapters.NewProductImageResolver(infra.Config.ProductImageBucket)
	}
	feed := fsadapters.NewCatalogFeedFS(infra.Firestore)
	catalog := usecase.NewCatalogSync(feed, cart, view, view, view, images)

	// checkout
	orders := fsadapters.NewOrderRepositoryFS(infra.Firestore)
	checkout := usecase.NewCheckout(cart, orders, view, view, view)
	if infra.DB != nil {
		checkout = checkout.WithArchiver(dbadapters.NewOrderArchivePG(infra.DB.Client))
	}
	if infra.SendGridAPIKey != "" && infra.OrderMailFrom != "" && infra.OrderMailTo != "" {
		mailer := mailadapters.NewOrderMailer(
			mailadapters.NewSendGridClient(infra.SendGridAPIKey),
			infra.OrderMailFrom,
			infra.OrderMailTo,
		)
		checkout = checkout.WithNotifier(mailer)
	} else {
		log.Printf("[di.container] order mail not configured (key/from/to missing)")
	}

	// visitor counter
	stats := fsadapters.NewStatsRepositoryFS(infra.Firestore)
	visitors := usecase.NewVisitorTracker(session, stats)

	// auth (degrades to a permanent signed-out view without Firebase Auth)
	var auth *usecase.AuthSessionManager
	if infra.FirebaseAuth != nil {
		provider, err := idadapters.NewFirebaseProvider(infra.FirebaseAuth)
		if err != nil {
			return nil, err
		}
		auth = usecase.NewAuthSessionManager(provider, view, view)
	} else {
		log.Printf("[di.container] identity provider not configured (sign-in disabled)")
	}

	// theme preference
	theme := usecase.NewThemeStore(durable, view, view)

	return &Container{
		View:     view,
		Cart:     cart,
		Catalog:  catalog,
		Checkout: checkout,
		Visitors: visitors,
		Auth:     auth,
		Theme:    theme,
	}, nil
}

// Start runs the startup sequence: apply theme, load + render the persisted
// cart, attach the auth observer, record the session visit, subscribe to the
// catalog feed.
func (c *Container) Start(ctx context.Context) error {
	if c == nil {
		return errors.New("di.container: container is nil")
	}

	c.Theme.Apply()
	c.Cart.Load()

	if c.Auth != nil {
		c.Auth.Start()
	}

	c.Visitors.Track(ctx)

	return c.Catalog.Start(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Catalog != nil {
		c.Catalog.Stop()
	}
	return nil
}
