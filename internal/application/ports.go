package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// PasswordHasher turns a plaintext password into an opaque, irreversible hash.
type PasswordHasher interface {
	Hash(plain vo.UserPassword) (string, error)
	Verify(hash vo.UserPasswordHash, plain string) bool
}

// EventBus publishes domain events to the asynchronous channel.
// Delivery is at-least-once and unordered across event types.
type EventBus interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

type Clock interface {
	Now() time.Time
}

// IDGenerator yields fresh 26-character sortable identifiers.
type IDGenerator interface {
	NewID() string
}

// ConfirmationTokenDecoder verifies a confirmation token and extracts the
// user it was issued for. Any failure wraps domain.ErrInvalidToken.
type ConfirmationTokenDecoder interface {
	Decode(token string) (vo.UserID, error)
}

// ConfirmationURLGenerator issues a time-boxed token for the user and embeds
// it in the public confirmation link.
type ConfirmationURLGenerator interface {
	Generate(userID vo.UserID) (string, error)
}

type EmailSender interface {
	SendConfirmationEmail(ctx context.Context, to, name, confirmationURL string) error
}
