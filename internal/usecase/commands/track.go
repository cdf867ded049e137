package commands

import (
	"context"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/infra"
	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/pkg/errs"
)

var (
	ErrInvalidTrackRequest = errs.New("invalid track request")
	ErrTrackFailed         = errs.New("cart tracking failed")
)

type TrackCartParams struct {
	Token      string
	Email      string
	Items      cart.Items
	TotalCents int64
	Currency   string
}

// TrackCommands is the ingestion surface for the external cart-tracking
// collaborator: one upsert per activity ping, keyed by cart token.
type TrackCommands interface {
	Track(ctx context.Context, params TrackCartParams) (*cart.Record, error)
}

type trackImpl struct {
	carts   CartRepository
	lookups *LookupCache
	clock   clock.Clock
}

func NewTrackCommands(carts CartRepository, lookups *LookupCache, clk clock.Clock) TrackCommands {
	return &trackImpl{
		carts:   carts,
		lookups: lookups,
		clock:   clk,
	}
}

func (t *trackImpl) Track(ctx context.Context, params TrackCartParams) (*cart.Record, error) {
	if params.Token == "" {
		return nil, ErrInvalidTrackRequest
	}

	now := t.clock.Now()

	rec, err := t.carts.FindByToken(ctx, params.Token)
	switch {
	case err == nil:
		// Terminal records are left alone; a recovered or expired token is
		// not resurrected by a late tracking ping.
		if rec.Status == cart.StatusRecovered || rec.Status == cart.StatusExpired {
			return rec, nil
		}
		rec.Email = params.Email
		rec.Items = params.Items
		rec.TotalCents = params.TotalCents
		rec.Currency = params.Currency
		if rec.Status == cart.StatusAbandoned {
			// Fresh activity reopens the cart.
			rec.Reactivate(now)
		}
		rec.Touch(now)
	case infra.IsKind(err, infra.KindNotFound):
		rec, err = cart.NewRecord(params.Token, params.Email, params.Items, params.TotalCents, params.Currency, now)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidTrackRequest)
		}
	default:
		return nil, errs.Mark(err, ErrTrackFailed)
	}

	if err := t.carts.Upsert(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrTrackFailed)
	}
	t.lookups.Invalidate(params.Token)

	return rec, nil
}
