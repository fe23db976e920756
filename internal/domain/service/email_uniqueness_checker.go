package service

import (
	"context"
	"errors"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// UserEmailUniquenessChecker answers "is this email free?" ahead of persistence.
// The unique index on user.email stays the source of truth; this check only
// gives a clean error for the common case.
type UserEmailUniquenessChecker struct {
	Repo repository.UserRepository
}

func NewUserEmailUniquenessChecker(repo repository.UserRepository) *UserEmailUniquenessChecker {
	return &UserEmailUniquenessChecker{Repo: repo}
}

func (c *UserEmailUniquenessChecker) EnsureEmailIsUnique(ctx context.Context, email vo.UserEmail) error {
	existing, err := c.Repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.Conflictf("user with email %q already exists", email.String())
	}
	return nil
}

var _ entity.EmailUniquenessChecker = (*UserEmailUniquenessChecker)(nil)
