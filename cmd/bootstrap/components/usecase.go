package components

import (
	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/config"
	"world-hotels/internal/usecase/commands"
	"world-hotels/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *pricing.Converter {
		return pricing.NewConverter(cfg.Pricing.ExchangeRates)
	},
	pricing.NewCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewHotelCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewBookingQueries,
		queries.NewStatsQueries,
	),
)
