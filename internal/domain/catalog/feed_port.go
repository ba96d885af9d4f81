// internal/domain/catalog/feed_port.go
package catalog

import "context"

// Feed is the live catalog stream.
//
// Subscribe delivers every snapshot (initial and subsequent) to onSnapshot as
// the complete current catalog; there is no incremental diffing. A delivery
// failure goes to onError and ends the stream — re-subscription is the
// caller's decision, never automatic. The returned stop function cancels the
// stream and is safe to call more than once.
type Feed interface {
	Subscribe(ctx context.Context, onSnapshot func([]Product), onError func(error)) (stop func(), err error)
}
