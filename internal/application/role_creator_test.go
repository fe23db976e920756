package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

func TestRoleCreator_GetOrCreate(t *testing.T) {
	roles := newMemRoleRepo()
	creator := application.NewRoleCreator(roles, clock, ids)

	first, err := creator.GetOrCreate(context.Background(), application.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, vo.RoleName("ROLE_STUDENT"), first.Name())
	assert.Equal(t, now, first.CreatedAt())

	again, err := creator.GetOrCreate(context.Background(), application.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), again.ID())

	all, _ := roles.FindAll(context.Background())
	assert.Len(t, all, 1)
}

func TestRoleCreator_RejectsBlankName(t *testing.T) {
	creator := application.NewRoleCreator(newMemRoleRepo(), clock, ids)
	_, err := creator.GetOrCreate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// lateRoleRepo hides a role from the first lookup, as if another process
// inserted it between the read and the write.
type lateRoleRepo struct {
	*memRoleRepo
	hidden bool
}

func (r *lateRoleRepo) FindByName(ctx context.Context, name vo.RoleName) (*entity.Role, error) {
	if !r.hidden {
		r.hidden = true
		return nil, domain.NotFoundf("role %q", name)
	}
	return r.memRoleRepo.FindByName(ctx, name)
}

func TestRoleCreator_LosesRaceToExistingRole(t *testing.T) {
	mem := newMemRoleRepo()
	winnerID, _ := vo.NewRoleID(ids.NewID())
	winner := entity.NewRole(winnerID, "ROLE_ADMIN", now)
	require.NoError(t, mem.Save(context.Background(), winner))

	creator := application.NewRoleCreator(&lateRoleRepo{memRoleRepo: mem}, clock, ids)
	got, err := creator.GetOrCreate(context.Background(), application.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, winnerID, got.ID())
}
