package repository

import (
	"context"
	"errors"

	"cart-recovery/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OptionsRepository is a single-row-per-key durable store for configuration
// blobs (the options-table equivalent).
type OptionsRepository struct {
	db *pgxpool.Pool
}

func NewOptionsRepository(db *pgxpool.Pool) *OptionsRepository {
	return &OptionsRepository{db: db}
}

func (r *OptionsRepository) Get(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx,
		`SELECT value FROM options WHERE name = $1`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read option", err)
	}
	return value, nil
}

func (r *OptionsRepository) Set(ctx context.Context, name string, value []byte) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO options (name, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		name, value)
	if err != nil {
		return infra.WrapRepoErr("failed to write option", err)
	}
	return nil
}
