package commands

import (
	"context"
	"time"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartRepository is the durable cart record store. Bulk transitions are
// plain conditional updates; the sweep tolerates at-least-once execution
// because every predicate excludes rows it has already moved.
type CartRepository interface {
	FindByToken(ctx context.Context, token string) (*cart.Record, error)
	Upsert(ctx context.Context, rec *cart.Record) error
	MarkAbandoned(ctx context.Context, cutoff, now time.Time) (int64, error)
	MarkExpired(ctx context.Context, cutoff, now time.Time) (int64, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
	FindEmailCandidates(ctx context.Context, step int, abandonedBefore time.Time) ([]*cart.Record, error)
	RecordEmailSent(ctx context.Context, id uuid.UUID, step int, now time.Time) error
	Reactivate(ctx context.Context, id uuid.UUID, now time.Time) error
}

// LiveCart is the shopper-facing cart the restore handler replays into.
type LiveCart interface {
	Clear(ctx context.Context, token string) error
	Add(ctx context.Context, token string, productID int64, quantity int) error
}

// Mailer is the outbound mail capability; the body is text/html.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SettingsProvider yields merged recovery settings (stored over defaults).
type SettingsProvider interface {
	Settings(ctx context.Context) (shared.RecoverySettings, error)
}

// TemplateEngine renders one recovery step for one cart. ok is false when no
// template exists for the step; the dispatcher skips, it does not fail.
type TemplateEngine interface {
	Render(ctx context.Context, step int, rec *cart.Record, restoreLink string) (shared.RenderedEmail, bool, error)
}
