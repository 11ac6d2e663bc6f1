package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/messaging"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier publishes to RabbitMQ when AMQP_URL is set and logs events otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("notifications: log only")
		return messaging.NewLogNotifier(logger), nil
	}

	n, err := messaging.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	logger.Info("notifications: amqp", "exchange", cfg.AMQP.Exchange)
	return n, nil
}
