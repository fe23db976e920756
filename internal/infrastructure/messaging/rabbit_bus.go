package messaging

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
)

type publisher interface {
	Publish(ctx context.Context, msg amqp.Publishing) error
}

// RabbitEventBus publishes domain events as persistent JSON messages.
type RabbitEventBus struct {
	pub    publisher
	logger *logrus.Logger
}

func NewRabbitEventBus(pub publisher, logger *logrus.Logger) *RabbitEventBus {
	return &RabbitEventBus{pub: pub, logger: logger}
}

// Publish stops at the first failure; events already sent stay sent.
func (b *RabbitEventBus) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, e := range events {
		body, err := Encode(e)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.EventName(), err)
		}
		err = b.pub.Publish(ctx, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.EventID(),
			Type:         e.EventName(),
			Timestamp:    e.OccurredOn().UTC(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s: %w", e.EventName(), err)
		}
		if b.logger != nil {
			b.logger.WithFields(logrus.Fields{
				"event_id":     e.EventID(),
				"event_name":   e.EventName(),
				"aggregate_id": e.AggregateID(),
			}).Debug("domain event published")
		}
	}
	return nil
}

// DiscardEventBus drops events. Used when mail sending is disabled so no
// consumer exists to drain the queue.
type DiscardEventBus struct {
	logger *logrus.Logger
}

func NewDiscardEventBus(logger *logrus.Logger) *DiscardEventBus {
	return &DiscardEventBus{logger: logger}
}

func (b *DiscardEventBus) Publish(_ context.Context, events ...event.DomainEvent) error {
	if b.logger == nil {
		return nil
	}
	for _, e := range events {
		b.logger.WithFields(logrus.Fields{
			"event_name":   e.EventName(),
			"aggregate_id": e.AggregateID(),
		}).Info("domain event discarded (MAIL_SEND_ENABLED=false)")
	}
	return nil
}
