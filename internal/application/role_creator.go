package application

import (
	"context"
	"errors"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

type RoleCreator struct {
	Repo  repo.RoleRepository
	Clock Clock
	IDs   IDGenerator
}

func NewRoleCreator(repo repo.RoleRepository, clock Clock, ids IDGenerator) *RoleCreator {
	return &RoleCreator{Repo: repo, Clock: clock, IDs: ids}
}

// GetOrCreate returns the role with the given name, creating it when absent.
func (s *RoleCreator) GetOrCreate(ctx context.Context, name string) (*entity.Role, error) {
	roleName, err := vo.NewRoleName(name)
	if err != nil {
		return nil, err
	}
	existing, err := s.find(ctx, roleName)
	if err != nil || existing != nil {
		return existing, err
	}

	id, err := vo.NewRoleID(s.IDs.NewID())
	if err != nil {
		return nil, err
	}
	role := entity.NewRole(id, roleName, s.Clock.Now())
	if err := s.Repo.Save(ctx, role); err != nil {
		// Lost a race against another creator: the stored one wins.
		if errors.Is(err, domain.ErrConflict) {
			return s.Repo.FindByName(ctx, roleName)
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleCreator) find(ctx context.Context, name vo.RoleName) (*entity.Role, error) {
	r, err := s.Repo.FindByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return r, err
}
