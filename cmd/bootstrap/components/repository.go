package components

import (
	"cart-recovery/internal/infra/readstore"
	repo_impl "cart-recovery/internal/infra/repository"
	"cart-recovery/internal/usecase"
	"cart-recovery/internal/usecase/commands"
	"cart-recovery/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewOptionsRepository,
			fx.As(new(usecase.OptionsRepository)),
		),
		fx.Annotate(
			repo_impl.NewLiveCartRepository,
			fx.As(new(commands.LiveCart)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
	),
)
