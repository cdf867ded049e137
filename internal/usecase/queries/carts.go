package queries

import (
	"context"
	"math"
	"time"

	"cart-recovery/internal/pkg/errs"
)

var ErrReportFailed = errs.New("cart report query failed")

// Read models (DTO for read side)
type StatsView struct {
	Abandoned             int64   `json:"abandoned"`
	Recovered             int64   `json:"recovered"`
	RecoveryRate          float64 `json:"recovery_rate"`
	RecoveredRevenueCents int64   `json:"recovered_revenue_cents"`
}

type CartListItem struct {
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	TotalCents     int64      `json:"total_cents"`
	Currency       string     `json:"currency"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

type CartReadStore interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumTotalByStatus(ctx context.Context, status string) (int64, error)
	RecentByActivity(ctx context.Context, limit int) ([]*CartListItem, error)
}

type CartQueries interface {
	Stats(ctx context.Context) (*StatsView, error)
	Recent(ctx context.Context, limit int) ([]*CartListItem, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	abandoned, err := q.store.CountByStatus(ctx, "abandoned")
	if err != nil {
		return nil, errs.Mark(err, ErrReportFailed)
	}
	recovered, err := q.store.CountByStatus(ctx, "recovered")
	if err != nil {
		return nil, errs.Mark(err, ErrReportFailed)
	}
	revenue, err := q.store.SumTotalByStatus(ctx, "recovered")
	if err != nil {
		return nil, errs.Mark(err, ErrReportFailed)
	}

	var rate float64
	if abandoned+recovered > 0 {
		rate = math.Round(float64(recovered)/float64(abandoned+recovered)*10000) / 100
	}

	return &StatsView{
		Abandoned:             abandoned,
		Recovered:             recovered,
		RecoveryRate:          rate,
		RecoveredRevenueCents: revenue,
	}, nil
}

func (q *cartQueriesImpl) Recent(ctx context.Context, limit int) ([]*CartListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	items, err := q.store.RecentByActivity(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrReportFailed)
	}
	return items, nil
}
