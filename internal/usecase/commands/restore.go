package commands

import (
	"context"
	"log/slog"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/infra"
	"cart-recovery/internal/pkg/cache"
	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/restorekey"
	"cart-recovery/internal/usecase/shared"
)

// LookupCache absorbs repeated clicks on the same restore link. Misses are
// cached too (negative sentinel) so unknown tokens do not hit the store on
// every retry.
type LookupCache = cache.TTLCache[*cart.Record]

type RestoreResult struct {
	RedirectURL string
	Restored    bool
}

// RestoreCommands never returns an error to the handler: every failure mode
// collapses into a redirect to the generic cart page with no distinguishing
// signal, so the endpoint cannot be used as a token or key oracle.
type RestoreCommands interface {
	Restore(ctx context.Context, token, key string) RestoreResult
}

type restoreImpl struct {
	carts    CartRepository
	liveCart LiveCart
	settings SettingsProvider
	signer   *restorekey.Signer
	lookups  *LookupCache
	recovery config.RecoveryConfig
	clock    clock.Clock
}

func NewRestoreCommands(
	carts CartRepository,
	liveCart LiveCart,
	settings SettingsProvider,
	signer *restorekey.Signer,
	lookups *LookupCache,
	cfg config.Config,
	clk clock.Clock,
) RestoreCommands {
	return &restoreImpl{
		carts:    carts,
		liveCart: liveCart,
		settings: settings,
		signer:   signer,
		lookups:  lookups,
		recovery: cfg.Recovery,
		clock:    clk,
	}
}

func (r *restoreImpl) Restore(ctx context.Context, token, key string) RestoreResult {
	failed := RestoreResult{RedirectURL: r.recovery.CartURL}

	if token == "" || key == "" {
		return failed
	}

	// Constant-time key check happens before any store access, so the
	// lookup cost cannot leak whether a token exists.
	if !r.signer.Verify(token, key) {
		return failed
	}

	rec, ok := r.lookupRecord(ctx, token)
	if !ok {
		return failed
	}

	if err := r.liveCart.Clear(ctx, token); err != nil {
		slog.Error("failed to clear live cart", "error", err)
		return failed
	}
	for _, item := range rec.Items.Restorable() {
		if err := r.liveCart.Add(ctx, token, item.ProductID, item.Quantity); err != nil {
			// Per-item best effort; a vanished product is silently skipped.
			slog.Warn("failed to replay cart item", "product_id", item.ProductID, "error", err)
		}
	}

	if err := r.carts.Reactivate(ctx, rec.ID, r.clock.Now()); err != nil {
		slog.Error("failed to reactivate cart record", "cart_id", rec.ID, "error", err)
		return failed
	}
	// The record changed under the cache.
	r.lookups.Invalidate(token)

	return RestoreResult{RedirectURL: r.redirectURL(ctx), Restored: true}
}

func (r *restoreImpl) lookupRecord(ctx context.Context, token string) (*cart.Record, bool) {
	if rec, negative, found := r.lookups.Get(token); found {
		if negative {
			return nil, false
		}
		return rec, true
	}

	rec, err := r.carts.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			r.lookups.SetNegative(token)
		} else {
			slog.Error("cart record lookup failed", "error", err)
		}
		return nil, false
	}

	r.lookups.Set(token, rec)
	return rec, true
}

func (r *restoreImpl) redirectURL(ctx context.Context) string {
	settings, err := r.settings.Settings(ctx)
	if err != nil {
		slog.Warn("failed to load settings for redirect, using default", "error", err)
		settings = shared.DefaultRecoverySettings()
	}
	if settings.RestoreRedirect == shared.RedirectCart {
		return r.recovery.CartURL
	}
	return r.recovery.CheckoutURL
}
