package components

import (
	"cart-recovery/internal/handler"
	"cart-recovery/internal/handler/api"
	"cart-recovery/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRestoreHandler,
		api.NewCartHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
