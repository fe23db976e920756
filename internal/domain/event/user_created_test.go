package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
)

func TestUserCreatedPrimitivesRoundTrip(t *testing.T) {
	at := time.Date(2025, 11, 9, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	e := event.NewUserCreated("01ARZ3NDEKTSV4RRFFQ69G5FAV", "alice@example.com", "Alice", at)

	assert.Equal(t, time.UTC, e.OccurredOn().Location())
	assert.Equal(t, map[string]any{"email": "alice@example.com", "name": "Alice"}, e.Primitives())

	back, err := event.UserCreatedFromPrimitives(e.AggregateID(), e.Primitives(), e.EventID(), e.OccurredOn())
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

func TestUserCreatedFromPrimitives_MissingEmail(t *testing.T) {
	_, err := event.UserCreatedFromPrimitives("01ARZ3NDEKTSV4RRFFQ69G5FAV", map[string]any{"name": "Alice"}, "id", time.Now())
	assert.Error(t, err)
}

func TestEventIDsAreUnique(t *testing.T) {
	a := event.NewUserCreated("01ARZ3NDEKTSV4RRFFQ69G5FAV", "a@example.com", "A", time.Now())
	b := event.NewUserCreated("01ARZ3NDEKTSV4RRFFQ69G5FAV", "a@example.com", "A", time.Now())
	assert.NotEqual(t, a.EventID(), b.EventID())
}
