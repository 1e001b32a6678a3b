package components

import (
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

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
		queries.NewUserQueries,
		queries.NewItemQueries,
		// BookingQueries doubles as the past-booking check that gates
		// commenting on items.
		fx.Annotate(
			queries.NewBookingQueries,
			fx.As(new(queries.BookingQueries)),
			fx.As(new(commands.PastBookingChecker)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewItemCommands,
		commands.NewBookingCommands,
	),
)
