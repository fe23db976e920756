package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
)

// ErrMalformed marks a message that can never be processed; it is dropped
// instead of requeued.
var ErrMalformed = errors.New("malformed message")

// Envelope is the JSON wire form of a domain event.
type Envelope struct {
	EventID     string         `json:"event_id"`
	EventName   string         `json:"event_name"`
	AggregateID string         `json:"aggregate_id"`
	OccurredOn  time.Time      `json:"occurred_on"`
	Body        map[string]any `json:"body"`
}

func NewEnvelope(e event.DomainEvent) Envelope {
	return Envelope{
		EventID:     e.EventID(),
		EventName:   e.EventName(),
		AggregateID: e.AggregateID(),
		OccurredOn:  e.OccurredOn().UTC(),
		Body:        e.Primitives(),
	}
}

func Encode(e event.DomainEvent) ([]byte, error) {
	return json.Marshal(NewEnvelope(e))
}

func Decode(b []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.EventID == "" || env.EventName == "" {
		return Envelope{}, fmt.Errorf("%w: missing event id or name", ErrMalformed)
	}
	return env, nil
}
