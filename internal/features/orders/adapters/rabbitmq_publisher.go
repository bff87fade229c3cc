package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elite-store/internal/core/logger"
	"elite-store/internal/core/money"
	"elite-store/internal/features/orders/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// RabbitPublisher publishes order events to a durable RabbitMQ queue.
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	currency money.Currency
}

// NewRabbitPublisher dials the broker and declares the queue so publishing never
// fails on missing infrastructure.
func NewRabbitPublisher(url, queue string, currency money.Currency) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare %s: %w", queue, err)
	}

	logger.Get().Info("Order events enabled", zap.String("queue", queue))

	return &RabbitPublisher{conn: conn, ch: ch, queue: queue, currency: currency}, nil
}

// PublishOrderConfirmed publishes an OrderConfirmed envelope.
func (p *RabbitPublisher) PublishOrderConfirmed(ctx context.Context, sessionID string, order *domain.Order) error {
	ev := BuildOrderConfirmedEnvelope(sessionID, p.currency, order, time.Now())

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", orderConfirmedEventName, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",      // default exchange
		p.queue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.EventID,
			Timestamp:    ev.OccurredAt,
			Type:         orderConfirmedEventName,
			Body:         body,
		},
	)
}

// Close closes the channel and the connection.
func (p *RabbitPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// PublishOrderConfirmed does nothing.
func (NopPublisher) PublishOrderConfirmed(ctx context.Context, sessionID string, order *domain.Order) error {
	return nil
}

// Close does nothing.
func (NopPublisher) Close() error {
	return nil
}
