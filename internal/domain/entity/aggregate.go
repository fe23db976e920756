package entity

import "github.com/oksasatya/go-course-marketplace/internal/domain/event"

// AggregateRoot collects domain events raised during a single workflow call.
// The workflow drains them with PullDomainEvents after the aggregate has been
// persisted.
type AggregateRoot struct {
	events []event.DomainEvent
}

func (a *AggregateRoot) record(e event.DomainEvent) {
	a.events = append(a.events, e)
}

// PullDomainEvents returns the recorded events in order and clears the outbox.
func (a *AggregateRoot) PullDomainEvents() []event.DomainEvent {
	events := a.events
	a.events = nil
	return events
}
