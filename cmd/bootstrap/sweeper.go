package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/internal/usecase/sweeper"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(NewSweeper),
	fx.Invoke(RunSweeper),
)

func NewSweeper(uow shared.UnitOfWork, bookings commands.BookingCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) *sweeper.Sweeper {
	timeout := cfg.Booking.PendingTimeout()
	if !cfg.Booking.SweeperEnabled() {
		timeout = 0
	}
	return sweeper.New(uow, bookings, clk, sweeper.Settings{
		Interval:  cfg.Booking.SweepInterval,
		Timeout:   timeout,
		BatchSize: cfg.Booking.SweepBatchSize,
	}, logger.With("component", "sweeper"))
}

func RunSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
