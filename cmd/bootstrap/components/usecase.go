package components

import (
	"rvmarket/internal/pkg/clock"
	"rvmarket/internal/usecase"
	"rvmarket/internal/usecase/commands"
	"rvmarket/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewListingUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewMessageQueries,
	),
)
