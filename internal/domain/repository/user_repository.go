package repository

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// UserRepository defines the persistence port for the user aggregate.
// Finders return an error wrapping domain.ErrNotFound when nothing matches.
// Save must report a duplicate email as domain.ErrConflict.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email vo.UserEmail) (*entity.User, error)
	FindByID(ctx context.Context, id vo.UserID) (*entity.User, error)
}
