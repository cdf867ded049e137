package repository

import (
	"context"
	"errors"
	"time"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

const cartColumns = `id, cart_token, email, cart_items, total_cents, currency, status,
	last_activity_at, abandoned_at, last_email_step, last_email_sent_at, created_at, updated_at`

func (r *CartRepository) FindByToken(ctx context.Context, token string) (*cart.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+cartColumns+` FROM cart_records WHERE cart_token = $1`, token)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cart record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart record by token", err)
	}
	return rec, nil
}

// Upsert inserts a new record or refreshes an existing one by token. The
// token is the conflict key and is never rewritten.
func (r *CartRepository) Upsert(ctx context.Context, rec *cart.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cart_records (`+cartColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (cart_token) DO UPDATE SET
		   email = EXCLUDED.email,
		   cart_items = EXCLUDED.cart_items,
		   total_cents = EXCLUDED.total_cents,
		   currency = EXCLUDED.currency,
		   status = EXCLUDED.status,
		   last_activity_at = EXCLUDED.last_activity_at,
		   updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.Token, rec.Email, rec.Items.Encode(), rec.TotalCents, rec.Currency,
		rec.Status.String(), rec.LastActivityAt, rec.AbandonedAt, rec.LastEmailStep,
		rec.LastEmailSentAt, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cart record", err)
	}
	return nil
}

// MarkAbandoned is the abandonment sweep: active records whose last activity
// predates the cutoff become abandoned. Records with no recorded activity
// are exempt.
func (r *CartRepository) MarkAbandoned(ctx context.Context, cutoff, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_records
		 SET status = 'abandoned', abandoned_at = $1, updated_at = $1
		 WHERE status = 'active' AND last_activity_at IS NOT NULL AND last_activity_at < $2`,
		now, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("abandonment sweep failed", err)
	}
	return tag.RowsAffected(), nil
}

// MarkExpired is the retention sweep over both active and abandoned records.
func (r *CartRepository) MarkExpired(ctx context.Context, cutoff, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_records
		 SET status = 'expired', updated_at = $1
		 WHERE status IN ('active', 'abandoned')
		   AND last_activity_at IS NOT NULL AND last_activity_at < $2`,
		now, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("expiry sweep failed", err)
	}
	return tag.RowsAffected(), nil
}

// PurgeExpired physically removes records that have sat in expired past the
// cutoff (keyed on updated_at, which the expiry sweep touched).
func (r *CartRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM cart_records WHERE status = 'expired' AND updated_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("expired purge failed", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) FindEmailCandidates(ctx context.Context, step int, abandonedBefore time.Time) ([]*cart.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cartColumns+` FROM cart_records
		 WHERE status = 'abandoned'
		   AND abandoned_at IS NOT NULL AND abandoned_at < $1
		   AND last_email_step < $2
		   AND email <> ''
		 ORDER BY abandoned_at`,
		abandonedBefore, step)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query email candidates", err)
	}
	defer rows.Close()

	var records []*cart.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan email candidate", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read email candidates", err)
	}
	return records, nil
}

func (r *CartRepository) RecordEmailSent(ctx context.Context, id uuid.UUID, step int, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_records
		 SET last_email_step = $1, last_email_sent_at = $2, updated_at = $2
		 WHERE id = $3 AND last_email_step < $1`,
		step, now, id)
	if err != nil {
		return infra.WrapRepoErr("failed to record sent email", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart record not found or step not advanced", nil, infra.KindNotFound)
	}
	return nil
}

// Reactivate flips the record back to active. abandoned_at and
// last_email_step are intentionally not reset: a restored cart that is
// abandoned again resumes its email cadence where it left off.
func (r *CartRepository) Reactivate(ctx context.Context, id uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_records SET status = 'active', updated_at = $1 WHERE id = $2`,
		now, id)
	if err != nil {
		return infra.WrapRepoErr("failed to reactivate cart record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart record not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*cart.Record, error) {
	var (
		rec      cart.Record
		rawItems []byte
		status   string
	)
	err := row.Scan(
		&rec.ID, &rec.Token, &rec.Email, &rawItems, &rec.TotalCents, &rec.Currency,
		&status, &rec.LastActivityAt, &rec.AbandonedAt, &rec.LastEmailStep,
		&rec.LastEmailSentAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Items = cart.DecodeItems(rawItems)
	rec.Status = cart.Status(status)
	return &rec, nil
}
