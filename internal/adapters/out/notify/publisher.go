// Package notify implements the asynchronous notification channel behind the
// NotificationPublisher port. Order mutations enqueue events into an in-memory
// dispatcher; a worker goroutine delivers them to a pluggable publisher, and
// failed deliveries are parked for periodic redelivery with exponential
// backoff.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"ordercore/internal/core/ports"

	"github.com/streadway/amqp"
)

// Publisher delivers one event to the downstream notification transport.
type Publisher interface {
	Publish(ctx context.Context, event ports.OrderEvent) error
}

// LogPublisher writes events to the structured log. Used when no message
// broker is configured, mirroring notification delivery without a transport.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that logs events instead of sending them.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "notify")}
}

// Publish logs the event at info level.
func (p *LogPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		"kind", event.Kind,
		"order_id", event.OrderID,
		"customer_id", event.CustomerID,
		"new_status", event.NewStatus,
	)
	return nil
}

// AMQPPublisher delivers events to a RabbitMQ queue as JSON messages.
type AMQPPublisher struct {
	channel   *amqp.Channel
	queueName string
}

// NewAMQPPublisher declares the queue and creates a publisher bound to it.
func NewAMQPPublisher(channel *amqp.Channel, queueName string) (*AMQPPublisher, error) {
	if _, err := channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, err
	}

	return &AMQPPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

// Publish sends the event to the queue via the default exchange.
func (p *AMQPPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
