// internal/domain/order/repository_port.go
package order

import "context"

// Repository creates order documents in the remote store.
// Create must be a single document write; the store assigns CreatedAt.
type Repository interface {
	Create(ctx context.Context, o Order) error
}

// Archiver keeps a secondary, queryable copy of submitted orders.
// Archiving is best-effort and runs only after the primary write succeeded.
type Archiver interface {
	Archive(ctx context.Context, o Order) error
}
