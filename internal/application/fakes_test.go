package application_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

var now = time.Date(2025, 11, 9, 10, 0, 0, 0, time.UTC)

// memUserRepo mimics the Postgres repository, including the unique index on email.
type memUserRepo struct {
	mu      sync.Mutex
	byID    map[vo.UserID]entity.UserSnapshot
	saves   int
	saveErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[vo.UserID]entity.UserSnapshot{}}
}

func (r *memUserRepo) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	s := u.Snapshot()
	for id, other := range r.byID {
		if id != s.ID && other.Email == s.Email {
			return domain.Conflictf("user with email %q already exists", s.Email)
		}
	}
	r.byID[s.ID] = s
	r.saves++
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email vo.UserEmail) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Email == email {
			return entity.RehydrateUser(s), nil
		}
	}
	return nil, domain.NotFoundf("user %s", email)
}

func (r *memUserRepo) FindByID(_ context.Context, id vo.UserID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFoundf("user %s", id)
	}
	return entity.RehydrateUser(s), nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

type memRoleRepo struct {
	mu    sync.Mutex
	roles map[vo.RoleID]*entity.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[vo.RoleID]*entity.Role{}}
}

func (r *memRoleRepo) Save(_ context.Context, role *entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.roles {
		if id != role.ID() && other.Name() == role.Name() {
			return domain.Conflictf("role %q already exists", role.Name())
		}
	}
	r.roles[role.ID()] = role
	return nil
}

func (r *memRoleRepo) FindByID(_ context.Context, id vo.RoleID) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	return nil, domain.NotFoundf("role %s", id)
}

func (r *memRoleRepo) FindByName(_ context.Context, name vo.RoleName) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.roles {
		if role.Name() == name {
			return role, nil
		}
	}
	return nil, domain.NotFoundf("role %q", name)
}

func (r *memRoleRepo) FindAll(context.Context) ([]*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

// prefixHasher is a reversible stand-in for bcrypt; good enough to prove the
// plaintext is never stored as-is.
type prefixHasher struct{}

func (prefixHasher) Hash(plain vo.UserPassword) (string, error) {
	return "hashed:" + plain.String(), nil
}

func (prefixHasher) Verify(hash vo.UserPasswordHash, plain string) bool {
	return strings.TrimPrefix(hash.String(), "hashed:") == plain
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, events ...event.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendConfirmationEmail(ctx context.Context, to, name, url string) error {
	return m.Called(ctx, to, name, url).Error(0)
}

// tokenStub maps tokens to user ids; anything else is invalid.
type tokenStub map[string]vo.UserID

func (s tokenStub) Decode(token string) (vo.UserID, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", domain.ErrInvalidToken
}

func (s tokenStub) Generate(userID vo.UserID) (string, error) {
	return "https://app.example.com/confirm/token-" + userID.String(), nil
}

var (
	clock = helpers.FixedClock{T: now}
	ids   = helpers.ULIDGenerator{}
)
