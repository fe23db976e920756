package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/oksasatya/go-course-marketplace/pkg/mailer"
	mailtpl "github.com/oksasatya/go-course-marketplace/pkg/mailer/templates"
)

type clock interface {
	Now() time.Time
}

// ConfirmationSender renders the confirm_account templates and hands the
// result to a mailer.Sender.
type ConfirmationSender struct {
	mailer  mailer.Sender
	brand   mailtpl.Brand
	linkTTL time.Duration
	clock   clock
}

func NewConfirmationSender(m mailer.Sender, brand mailtpl.Brand, linkTTL time.Duration, c clock) *ConfirmationSender {
	return &ConfirmationSender{mailer: m, brand: brand, linkTTL: linkTTL, clock: c}
}

func (s *ConfirmationSender) SendConfirmationEmail(ctx context.Context, to, name, confirmationURL string) error {
	var opts []mailtpl.Option
	if s.linkTTL > 0 {
		opts = append(opts, mailtpl.WithExpiresAt(s.clock.Now().Add(s.linkTTL)))
	}
	data := mailtpl.NewConfirmAccountData(s.brand, name, to, confirmationURL, opts...)
	subject, text, html, err := mailtpl.Render(mailtpl.ConfirmAccount, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", mailtpl.ConfirmAccount, err)
	}
	return s.mailer.Send(ctx, to, subject, text, html)
}
