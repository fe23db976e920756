package repository

import (
	"context"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// RoleRepository defines the persistence port for roles.
type RoleRepository interface {
	Save(ctx context.Context, r *entity.Role) error
	FindByID(ctx context.Context, id vo.RoleID) (*entity.Role, error)
	FindByName(ctx context.Context, name vo.RoleName) (*entity.Role, error)
	FindAll(ctx context.Context) ([]*entity.Role, error)
}
