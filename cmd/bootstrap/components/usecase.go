package components

import (
	"gourmet-gateway/internal/pkg/clock"
	"gourmet-gateway/internal/usecase/commands"
	"gourmet-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewReservationQueries,
		queries.NewDashboardQueries,
		queries.NewPlaceQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVenueCommands,
		commands.NewReservationCommands,
	),
)
