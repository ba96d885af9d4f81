// internal/adapters/out/gcs/product_image_resolver.go
package gcs

import (
	"context"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	gcscommon "boutique/internal/adapters/out/gcs/common"
)

// ProductImageResolver turns stored catalog image refs into browsable URLs.
//
// main_image can be:
// - http(s)://...                          (returned as-is)
// - gs://bucket/object or a GCS https URL  (rewritten to the public form)
// - a bare object path                     (resolved within Bucket)
//
// With a storage client attached, resolved objects are probed once so a
// broken ref logs a WARN instead of silently rendering a dead image.
type ProductImageResolver struct {
	Bucket string

	client       *storage.Client
	probeTimeout time.Duration
}

func NewProductImageResolver(bucket string) *ProductImageResolver {
	return &ProductImageResolver{Bucket: strings.TrimSpace(bucket)}
}

func NewProductImageResolverWithProbe(bucket string, client *storage.Client) *ProductImageResolver {
	return &ProductImageResolver{
		Bucket:       strings.TrimSpace(bucket),
		client:       client,
		probeTimeout: 2 * time.Second,
	}
}

func (r *ProductImageResolver) Resolve(ctx context.Context, stored string) string {
	p := strings.TrimSpace(stored)
	if p == "" {
		return ""
	}

	if b, obj, ok := gcscommon.ParseRef(p); ok {
		r.probe(ctx, b, obj)
		return gcscommon.PublicURL(b, obj, r.Bucket)
	}

	// non-GCS absolute URL
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}

	// bare object path within the configured bucket
	if r.Bucket == "" {
		return p
	}
	r.probe(ctx, r.Bucket, strings.TrimLeft(p, "/"))
	return gcscommon.PublicURL(r.Bucket, p, "")
}

func (r *ProductImageResolver) probe(ctx context.Context, bucket, object string) {
	if r == nil || r.client == nil || bucket == "" || object == "" {
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	if _, err := r.client.Bucket(bucket).Object(object).Attrs(probeCtx); err != nil {
		log.Printf("[product_image_resolver] WARN: image probe failed gs://%s/%s: %v", bucket, object, err)
	}
}
