package readstore

import (
	"context"

	"cart-recovery/internal/infra"
	"cart-recovery/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CartReadStore serves the reporting API; it never writes.
type CartReadStore struct {
	db *pgxpool.Pool
}

func NewCartReadStore(db *pgxpool.Pool) *CartReadStore {
	return &CartReadStore{db: db}
}

func (r *CartReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM cart_records WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count cart records", err)
	}
	return count, nil
}

func (r *CartReadStore) SumTotalByStatus(ctx context.Context, status string) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cents), 0) FROM cart_records WHERE status = $1`, status).Scan(&sum)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum cart totals", err)
	}
	return sum, nil
}

func (r *CartReadStore) RecentByActivity(ctx context.Context, limit int) ([]*queries.CartListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT email, status, total_cents, currency, last_activity_at
		 FROM cart_records
		 ORDER BY last_activity_at DESC NULLS LAST
		 LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent carts", err)
	}
	defer rows.Close()

	var items []*queries.CartListItem
	for rows.Next() {
		var item queries.CartListItem
		if err := rows.Scan(&item.Email, &item.Status, &item.TotalCents, &item.Currency, &item.LastActivityAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent cart row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read recent carts", err)
	}
	return items, nil
}
