package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable fact recorded by an aggregate and published
// once the aggregate has been persisted.
type DomainEvent interface {
	EventID() string
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
	// Primitives returns the event body as plain values for the wire.
	Primitives() map[string]any
}

// Base carries the envelope fields every event shares.
type Base struct {
	ID         string
	Aggregate  string
	OccurredAt time.Time
}

func NewBase(aggregateID string, occurredOn time.Time) Base {
	return Base{ID: uuid.NewString(), Aggregate: aggregateID, OccurredAt: occurredOn.UTC()}
}

func (b Base) EventID() string       { return b.ID }
func (b Base) AggregateID() string   { return b.Aggregate }
func (b Base) OccurredOn() time.Time { return b.OccurredAt }
