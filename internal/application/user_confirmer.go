package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/go-course-marketplace/internal/domain/repository"
)

// UserConfirmer activates an account from the emailed confirmation token.
type UserConfirmer struct {
	Repo   repo.UserRepository
	Tokens ConfirmationTokenDecoder
	Clock  Clock
	Logger *logrus.Logger
}

func NewUserConfirmer(repo repo.UserRepository, tokens ConfirmationTokenDecoder, clock Clock, logger *logrus.Logger) *UserConfirmer {
	return &UserConfirmer{Repo: repo, Tokens: tokens, Clock: clock, Logger: logger}
}

// Confirm moves a pending user to active. It fails with ErrInvalidToken,
// ErrNotFound, ErrAlreadyConfirmed or ErrBannedAccount without mutating state.
func (s *UserConfirmer) Confirm(ctx context.Context, cmd ConfirmUserCommand) error {
	userID, err := s.Tokens.Decode(cmd.Token)
	if err != nil {
		return err
	}
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.Confirm(s.Clock.Now()); err != nil {
		return err
	}
	if err := s.Repo.Save(ctx, u); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", userID.String()).Info("user confirmed")
	}
	return nil
}
