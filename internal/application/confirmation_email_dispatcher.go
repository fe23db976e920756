package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// ConfirmationEmailDispatcher reacts to UserCreated by mailing a confirmation
// link. It never retries: errors go back to the messaging layer, whose retry
// policy decides what happens next. Redelivery only causes a duplicate email.
type ConfirmationEmailDispatcher struct {
	URLs   ConfirmationURLGenerator
	Sender EmailSender
	Logger *logrus.Logger
}

func NewConfirmationEmailDispatcher(urls ConfirmationURLGenerator, sender EmailSender, logger *logrus.Logger) *ConfirmationEmailDispatcher {
	return &ConfirmationEmailDispatcher{URLs: urls, Sender: sender, Logger: logger}
}

func (d *ConfirmationEmailDispatcher) HandleUserCreated(ctx context.Context, e event.UserCreated) error {
	userID, err := vo.NewUserID(e.AggregateID())
	if err != nil {
		return fmt.Errorf("user.created %s: %w", e.EventID(), err)
	}
	url, err := d.URLs.Generate(userID)
	if err != nil {
		return fmt.Errorf("generate confirmation url: %w", err)
	}
	if err := d.Sender.SendConfirmationEmail(ctx, e.Email, e.Name, url); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{"user_id": userID.String(), "event_id": e.EventID()}).Info("confirmation email sent")
	}
	return nil
}
