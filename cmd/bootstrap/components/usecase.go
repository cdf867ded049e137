package components

import (
	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/usecase"
	"cart-recovery/internal/usecase/commands"
	"cart-recovery/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewSettingsService,
	fx.Annotate(
		usecase.NewSettingsService,
		fx.As(new(commands.SettingsProvider)),
	),
	usecase.NewTemplateService,
	fx.Annotate(
		usecase.NewTemplateService,
		fx.As(new(commands.TemplateEngine)),
	),
	usecase.NewTokenValidator,
	usecase.NewAuthUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSweepCommands,
		commands.NewRestoreCommands,
		commands.NewTrackCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
	),
)
