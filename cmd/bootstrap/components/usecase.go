package components

import (
	"log/slog"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	booking.NewFactory,
	func(refs shared.ReferenceDataStore, clk clock.Clock, cfg config.Config) *shared.PricingResolver {
		return shared.NewPricingResolver(refs, clk, cfg.Booking.DefaultCurrency, cfg.Booking.Location())
	},
	shared.NewSideEffects,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			resolver *shared.PricingResolver,
			factory *booking.Factory,
			effects *shared.SideEffects,
			clk clock.Clock,
			logger *slog.Logger,
			cfg config.Config,
		) commands.BookingCommands {
			return commands.NewBookingCommands(uow, resolver, factory, effects, clk, logger, commands.BookingSettings{
				PendingTimeout: cfg.Booking.PendingTimeout(),
			})
		},
		commands.NewMaintenanceCommands,
		commands.NewCourtCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewQuoteQueries,
	),
)
