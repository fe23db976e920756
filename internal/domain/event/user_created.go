package event

import (
	"fmt"
	"time"
)

const UserCreatedName = "user.created"

// UserCreated is recorded when a new account is registered.
type UserCreated struct {
	Base
	Email string
	Name  string
}

func NewUserCreated(userID, email, name string, occurredOn time.Time) UserCreated {
	return UserCreated{Base: NewBase(userID, occurredOn), Email: email, Name: name}
}

func (UserCreated) EventName() string { return UserCreatedName }

func (e UserCreated) Primitives() map[string]any {
	return map[string]any{
		"email": e.Email,
		"name":  e.Name,
	}
}

// UserCreatedFromPrimitives rebuilds the event on the consumer side.
func UserCreatedFromPrimitives(aggregateID string, body map[string]any, eventID string, occurredOn time.Time) (UserCreated, error) {
	email, ok := body["email"].(string)
	if !ok || email == "" {
		return UserCreated{}, fmt.Errorf("user.created: missing email")
	}
	name, _ := body["name"].(string)
	return UserCreated{
		Base:  Base{ID: eventID, Aggregate: aggregateID, OccurredAt: occurredOn},
		Email: email,
		Name:  name,
	}, nil
}
