package components

import (
	"gamestore/internal/pkg/clock"
	"gamestore/internal/usecase"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGameQueries,
		queries.NewPromotionQueries,
		queries.NewLibraryQueries,
		queries.NewStatisticsQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGameCommands,
		commands.NewPromotionCommands,
		commands.NewPurchaseCommands,
		commands.NewLibraryCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
