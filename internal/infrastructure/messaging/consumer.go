package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// Handler processes one decoded event. Returning an error wrapping
// ErrMalformed drops the message; any other error requeues it.
type Handler func(ctx context.Context, env Envelope) error

// Claimer remembers which events were already handled so redeliveries can be
// skipped. Release undoes a claim whose handling failed.
type Claimer interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// EventConsumer routes deliveries to handlers by event name.
type EventConsumer struct {
	handlers map[string]Handler
	claimer  Claimer
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewEventConsumer(logger *logrus.Logger, timeout time.Duration) *EventConsumer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &EventConsumer{handlers: map[string]Handler{}, timeout: timeout, logger: logger}
}

// WithClaimer enables redelivery suppression.
func (c *EventConsumer) WithClaimer(cl Claimer) *EventConsumer {
	c.claimer = cl
	return c
}

func (c *EventConsumer) Register(eventName string, h Handler) {
	c.handlers[eventName] = h
}

// Run drains deliveries until ctx is done or the channel closes.
func (c *EventConsumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			c.HandleDelivery(ctx, d)
		}
	}
}

// HandleDelivery processes a single message and acks or nacks it.
func (c *EventConsumer) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	env, err := Decode(d.Body)
	if err != nil {
		c.log().WithError(err).Warn("dropping bad message")
		_ = d.Nack(false, false)
		return
	}
	fields := logrus.Fields{"event_id": env.EventID, "event_name": env.EventName}

	h, ok := c.handlers[env.EventName]
	if !ok {
		c.log().WithFields(fields).Debug("no handler, acking")
		_ = d.Ack(false)
		return
	}

	if c.claimer != nil {
		first, err := c.claimer.Claim(ctx, env.EventID)
		if err != nil {
			c.log().WithFields(fields).WithError(err).Warn("claim failed, handling anyway")
		} else if !first {
			c.log().WithFields(fields).Info("already handled, acking redelivery")
			_ = d.Ack(false)
			return
		}
	}

	hctx, cancel := context.WithTimeout(ctx, c.timeout)
	err = h(hctx, env)
	cancel()
	if err == nil {
		_ = d.Ack(false)
		return
	}

	if c.claimer != nil {
		if rerr := c.claimer.Release(ctx, env.EventID); rerr != nil {
			c.log().WithFields(fields).WithError(rerr).Warn("release claim failed")
		}
	}
	if errors.Is(err, ErrMalformed) {
		c.log().WithFields(fields).WithError(err).Warn("dropping unprocessable event")
		_ = d.Nack(false, false)
		return
	}
	c.log().WithFields(fields).WithError(err).Error("handler failed, requeueing")
	_ = d.Nack(false, true)
}

func (c *EventConsumer) log() *logrus.Logger {
	if c.logger == nil {
		return logrus.StandardLogger()
	}
	return c.logger
}

type userCreatedHandler interface {
	HandleUserCreated(ctx context.Context, e event.UserCreated) error
}

// UserCreatedHandler decodes user.created envelopes for h. Envelopes without a
// valid user id or email are malformed and never reach h.
func UserCreatedHandler(h userCreatedHandler) Handler {
	return func(ctx context.Context, env Envelope) error {
		if _, err := vo.NewUserID(env.AggregateID); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		e, err := event.UserCreatedFromPrimitives(env.AggregateID, env.Body, env.EventID, env.OccurredOn)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return h.HandleUserCreated(ctx, e)
	}
}
