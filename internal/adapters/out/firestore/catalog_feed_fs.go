// internal/adapters/out/firestore/catalog_feed_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogdom "boutique/internal/domain/catalog"
)

const defaultProductsCollection = "products"

// CatalogFeedFS implements catalog.Feed on a Firestore collection listener.
//
// Every delivered query snapshot is decoded in full and handed to the
// subscriber as the complete current catalog (replace-all semantics).
type CatalogFeedFS struct {
	Client     *firestore.Client
	Collection string
}

func NewCatalogFeedFS(client *firestore.Client) *CatalogFeedFS {
	return &CatalogFeedFS{Client: client, Collection: defaultProductsCollection}
}

func (f *CatalogFeedFS) col() *firestore.CollectionRef {
	name := strings.TrimSpace(f.Collection)
	if name == "" {
		name = defaultProductsCollection
	}
	return f.Client.Collection(name)
}

// Subscribe starts the listener goroutine.
//
// Context cancellation (via the returned stop or the parent ctx) ends the
// stream silently; any other iterator error is reported once through onError
// and the goroutine exits. No automatic retry.
func (f *CatalogFeedFS) Subscribe(
	ctx context.Context,
	onSnapshot func([]catalogdom.Product),
	onError func(error),
) (func(), error) {
	if f == nil || f.Client == nil {
		return nil, errors.New("catalog_feed_fs: firestore client is nil")
	}
	if onSnapshot == nil {
		return nil, errors.New("catalog_feed_fs: onSnapshot is nil")
	}

	subCtx, cancel := context.WithCancel(ctx)
	it := f.col().Snapshots(subCtx)

	go func() {
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if subCtx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				log.Printf("[catalog_feed_fs] snapshot stream failed: %v", err)
				if onError != nil {
					onError(err)
				}
				return
			}
			onSnapshot(decodeProducts(qs))
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(cancel)
	}
	return stop, nil
}

func decodeProducts(qs *firestore.QuerySnapshot) []catalogdom.Product {
	out := []catalogdom.Product{}
	if qs == nil {
		return out
	}

	docs := qs.Documents
	for {
		snap, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("[catalog_feed_fs] WARN: document decode aborted: %v", err)
			break
		}
		out = append(out, productFromSnapshot(snap))
	}
	return out
}

// productFromSnapshot parses document data tolerantly: older catalog docs
// may miss fields or store numbers as integers.
func productFromSnapshot(snap *firestore.DocumentSnapshot) catalogdom.Product {
	p := catalogdom.Product{
		ID:      snap.Ref.ID,
		Visible: true,
	}

	raw := snap.Data()
	if raw == nil {
		return p
	}

	p.Name = strings.TrimSpace(asString(raw["name"]))
	p.PriceNow = asFloat(raw["price_now"])
	p.MainImage = strings.TrimSpace(asString(raw["main_image"]))

	// only an explicit false hides the product
	if v, ok := raw["visible"].(bool); ok {
		p.Visible = v
	}
	return p
}
