package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// Base roles every installation starts with.
const (
	RoleStudent = "ROLE_STUDENT"
	RoleTeacher = "ROLE_TEACHER"
	RoleAdmin   = "ROLE_ADMIN"
)

var BaseRoles = []string{RoleStudent, RoleTeacher, RoleAdmin}

type AdminFixture struct {
	Email    string
	Password string
	Name     string
}

// FixtureLoader seeds base roles and an active admin carrying all of them.
// Running it again converges on the same state.
type FixtureLoader struct {
	Roles  *RoleCreator
	Users  repo.UserRepository
	Hasher PasswordHasher
	Clock  Clock
	IDs    IDGenerator
	Logger *logrus.Logger
}

func NewFixtureLoader(roles *RoleCreator, users repo.UserRepository, hasher PasswordHasher, clock Clock, ids IDGenerator, logger *logrus.Logger) *FixtureLoader {
	return &FixtureLoader{Roles: roles, Users: users, Hasher: hasher, Clock: clock, IDs: ids, Logger: logger}
}

// Load creates whatever is missing and returns the admin.
// The admin is built directly, so no UserCreated event and no email.
func (l *FixtureLoader) Load(ctx context.Context, admin AdminFixture) (*entity.User, error) {
	roles := make([]*entity.Role, 0, len(BaseRoles))
	for _, name := range BaseRoles {
		r, err := l.Roles.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}

	email, err := vo.NewUserEmail(admin.Email)
	if err != nil {
		return nil, err
	}
	now := l.Clock.Now()

	u, err := l.Users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if u, err = l.newAdmin(email, admin, now); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	for _, r := range roles {
		u.AddRole(r, now)
	}
	if err := l.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	if l.Logger != nil {
		l.Logger.WithFields(logrus.Fields{"user_id": u.ID().String(), "roles": u.RoleNames()}).Info("fixtures loaded")
	}
	return u, nil
}

func (l *FixtureLoader) newAdmin(email vo.UserEmail, admin AdminFixture, now time.Time) (*entity.User, error) {
	id, err := vo.NewUserID(l.IDs.NewID())
	if err != nil {
		return nil, err
	}
	password, err := vo.NewUserPassword(admin.Password)
	if err != nil {
		return nil, err
	}
	name, err := vo.NewUserName(admin.Name)
	if err != nil {
		return nil, err
	}
	hashed, err := l.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	hash, err := vo.NewUserPasswordHash(hashed)
	if err != nil {
		return nil, err
	}
	active := vo.UserStatusActive
	return entity.NewUser(entity.UserParams{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Status:       &active,
		Now:          now,
	}), nil
}
