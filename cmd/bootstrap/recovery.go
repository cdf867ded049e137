package bootstrap

import (
	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/infra/mailer"
	"cart-recovery/internal/pkg/cache"
	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/restorekey"
	"cart-recovery/internal/usecase/commands"

	"go.uber.org/fx"
)

// RecoveryModule provides the pieces of the recovery workflow that are not
// repositories or usecases: the HMAC signer, the SMTP mailer, and the
// restore lookup cache.
var RecoveryModule = fx.Module("recovery",
	fx.Provide(
		NewSigner,
		fx.Annotate(
			mailer.NewSMTPMailer,
			fx.As(new(commands.Mailer)),
		),
		NewLookupCache,
	),
)

func NewSigner(cfg config.Config) *restorekey.Signer {
	return restorekey.NewSigner(cfg.Recovery.Secret)
}

func NewLookupCache(cfg config.Config, clk clock.Clock) *commands.LookupCache {
	return cache.NewTTLCache[*cart.Record](cfg.Recovery.LookupCacheTTL, clk)
}
