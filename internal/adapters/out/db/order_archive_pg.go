// internal/adapters/out/db/order_archive_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	orderdom "boutique/internal/domain/order"
)

// OrderArchivePG implements order.Archiver on PostgreSQL.
//
// The archive is a flat append-only table the admin side can query without
// touching Firestore. Items are stored as a JSONB snapshot.
//
//	CREATE TABLE IF NOT EXISTS order_archive (
//	  order_id      TEXT PRIMARY KEY,
//	  customer_name TEXT NOT NULL,
//	  phone         TEXT NOT NULL,
//	  address       TEXT NOT NULL,
//	  items         JSONB NOT NULL,
//	  total_price   NUMERIC NOT NULL,
//	  status        TEXT NOT NULL,
//	  archived_at   TIMESTAMPTZ NOT NULL DEFAULT now()
//	)
type OrderArchivePG struct {
	DB *sql.DB
}

func NewOrderArchivePG(db *sql.DB) *OrderArchivePG {
	return &OrderArchivePG{DB: db}
}

func (r *OrderArchivePG) Archive(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO order_archive (order_id, customer_name, phone, address, items, total_price, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (order_id) DO NOTHING`

	_, err = r.DB.ExecContext(ctx, q,
		o.ID,
		o.CustomerName,
		o.Phone,
		o.Address,
		items,
		o.TotalPrice,
		o.Status,
	)
	if err != nil {
		// surface PG error codes (e.g. undefined_table) readably
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return errors.New("order_archive_pg: insert failed: " + string(pqErr.Code) + " " + pqErr.Message)
		}
		return err
	}
	return nil
}
