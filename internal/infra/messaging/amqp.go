package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// message is the wire body of a published event.
type message struct {
	Type       string         `json:"type"`
	ResourceID uuid.UUID      `json:"resourceId"`
	Recipients []uuid.UUID    `json:"recipients"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func toMessage(e shared.Event) message {
	recipients := e.Recipients
	if recipients == nil {
		recipients = []uuid.UUID{}
	}
	return message{
		Type:       e.Type,
		ResourceID: e.ResourceID,
		Recipients: recipients,
		Data:       e.Data,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

// AMQPNotifier publishes events to a topic exchange, routed by event type.
type AMQPNotifier struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open amqp channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) Publish(ctx context.Context, event shared.Event) error {
	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	// amqp channels are not safe for concurrent publishes
	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.ch.PublishWithContext(ctx, n.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", event.Type)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// LogNotifier writes events to the log. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(ctx context.Context, event shared.Event) error {
	n.logger.InfoContext(ctx, "notification",
		"type", event.Type,
		"resourceId", event.ResourceID.String(),
		"recipients", len(event.Recipients),
	)
	return nil
}
