// Package rabbitmq publishes order events to a RabbitMQ topic exchange so
// kitchen displays and notification consumers can follow the workflow
// without polling the database.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"galeteria/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ordersExchange = "orders_topic"

// Publisher implements ports.OrderEventPublisher over an AMQP connection.
// A fresh channel is opened per publish; the caller owns the connection.
type Publisher struct {
	conn *amqp.Connection
}

// NewPublisher creates a publisher over an established connection.
func NewPublisher(conn *amqp.Connection) *Publisher {
	return &Publisher{conn: conn}
}

// PublishOrderStatusChanged sends the event to the orders exchange with a
// routing key of orders.<type>.<status>, e.g. orders.delivery.ready.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	routingKey := fmt.Sprintf("orders.%s.%s", event.OrderType, event.Status)

	err = ch.PublishWithContext(ctx, ordersExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
