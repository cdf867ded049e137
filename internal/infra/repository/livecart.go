package repository

import (
	"context"

	"cart-recovery/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LiveCartRepository backs the shopper-facing cart the restore handler
// replays into, keyed by the same cart token the storefront session carries.
type LiveCartRepository struct {
	db *pgxpool.Pool
}

func NewLiveCartRepository(db *pgxpool.Pool) *LiveCartRepository {
	return &LiveCartRepository{db: db}
}

func (r *LiveCartRepository) Clear(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM live_cart_items WHERE cart_token = $1`, token)
	if err != nil {
		return infra.WrapRepoErr("failed to clear live cart", err)
	}
	return nil
}

// Add accumulates quantity when the same link is replayed into a cart that
// already holds the product.
func (r *LiveCartRepository) Add(ctx context.Context, token string, productID int64, quantity int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO live_cart_items (cart_token, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (cart_token, product_id)
		 DO UPDATE SET quantity = live_cart_items.quantity + EXCLUDED.quantity`,
		token, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to add live cart item", err)
	}
	return nil
}
