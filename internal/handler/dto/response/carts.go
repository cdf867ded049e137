package response

import (
	"time"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TrackCartResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRecord(rec *cart.Record) *TrackCartResponse {
	return &TrackCartResponse{
		ID:        rec.ID.String(),
		Token:     rec.Token,
		Status:    rec.Status.String(),
		UpdatedAt: rec.UpdatedAt,
	}
}

type StatsResponse struct {
	Abandoned             int64   `json:"abandoned"`
	Recovered             int64   `json:"recovered"`
	RecoveryRate          float64 `json:"recovery_rate"`
	RecoveredRevenueCents int64   `json:"recovered_revenue_cents"`
}

func FromStatsView(view *queries.StatsView) *StatsResponse {
	var resp StatsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type CartListItemResponse struct {
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	TotalCents     int64      `json:"total_cents"`
	Currency       string     `json:"currency"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

func FromCartListItems(items []*queries.CartListItem) []*CartListItemResponse {
	resp := make([]*CartListItemResponse, 0, len(items))
	for _, item := range items {
		var r CartListItemResponse
		_ = copier.Copy(&r, item)
		resp = append(resp, &r)
	}
	return resp
}
