package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/service"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email vo.UserEmail) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

const alice = vo.UserEmail("alice@example.com")

func TestEnsureEmailIsUnique_Free(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, alice).Return(nil, domain.NotFoundf("user %s", alice))

	err := service.NewUserEmailUniquenessChecker(repo).EnsureEmailIsUnique(context.Background(), alice)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEnsureEmailIsUnique_Taken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, alice).Return(entity.NewUser(entity.UserParams{Email: alice}), nil)

	err := service.NewUserEmailUniquenessChecker(repo).EnsureEmailIsUnique(context.Background(), alice)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "alice@example.com")
}

func TestEnsureEmailIsUnique_RepoFailure(t *testing.T) {
	boom := errors.New("connection reset")
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, alice).Return(nil, boom)

	err := service.NewUserEmailUniquenessChecker(repo).EnsureEmailIsUnique(context.Background(), alice)
	assert.ErrorIs(t, err, boom)
}
