package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// UserCreator runs the registration workflow.
type UserCreator struct {
	Repo    repo.UserRepository
	Hasher  PasswordHasher
	Checker entity.EmailUniquenessChecker
	Bus     EventBus
	Clock   Clock
	IDs     IDGenerator
	Logger  *logrus.Logger
}

func NewUserCreator(repo repo.UserRepository, hasher PasswordHasher, checker entity.EmailUniquenessChecker, bus EventBus, clock Clock, ids IDGenerator, logger *logrus.Logger) *UserCreator {
	return &UserCreator{
		Repo:    repo,
		Hasher:  hasher,
		Checker: checker,
		Bus:     bus,
		Clock:   clock,
		IDs:     ids,
		Logger:  logger,
	}
}

// Create registers a pending account and returns its id. Nothing is persisted
// unless every check passes, and events are published only after Save. A
// publish failure is returned even though the row is already stored.
func (s *UserCreator) Create(ctx context.Context, cmd CreateUserCommand) (vo.UserID, error) {
	id, err := vo.NewUserID(s.IDs.NewID())
	if err != nil {
		return "", err
	}
	email, err := vo.NewUserEmail(cmd.Email)
	if err != nil {
		return "", err
	}
	password, err := vo.NewUserPassword(cmd.Password)
	if err != nil {
		return "", err
	}
	name, err := vo.NewUserName(cmd.Name)
	if err != nil {
		return "", err
	}
	var avatar *vo.UserAvatarURL
	if cmd.AvatarURL != nil && *cmd.AvatarURL != "" {
		a, err := vo.NewUserAvatarURL(*cmd.AvatarURL)
		if err != nil {
			return "", err
		}
		avatar = &a
	}

	hashed, err := s.Hasher.Hash(password)
	if err != nil {
		return "", err
	}
	hash, err := vo.NewUserPasswordHash(hashed)
	if err != nil {
		return "", err
	}

	u, err := entity.CreateUser(ctx, s.Checker, entity.UserParams{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		AvatarURL:    avatar,
		Now:          s.Clock.Now(),
	})
	if err != nil {
		return "", err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return "", err
	}

	if err := s.Bus.Publish(ctx, u.PullDomainEvents()...); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id.String()).Error("publish domain events failed")
		}
		return "", fmt.Errorf("publish domain events: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", id.String()).Info("user registered")
	}
	return id, nil
}
