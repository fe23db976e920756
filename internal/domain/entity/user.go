package entity

import (
	"context"
	"time"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// EmailUniquenessChecker guards the one-account-per-email rule.
type EmailUniquenessChecker interface {
	EnsureEmailIsUnique(ctx context.Context, email vo.UserEmail) error
}

// User is the aggregate root for the user domain.
// The password field only ever holds a hash.
type User struct {
	AggregateRoot

	id           vo.UserID
	email        vo.UserEmail
	passwordHash vo.UserPasswordHash
	name         vo.UserName
	avatarURL    *vo.UserAvatarURL
	status       vo.UserStatus
	roles        []*Role
	createdAt    time.Time
	updatedAt    time.Time
}

// UserParams are the inputs shared by NewUser and CreateUser.
type UserParams struct {
	ID           vo.UserID
	Email        vo.UserEmail
	PasswordHash vo.UserPasswordHash
	Name         vo.UserName
	AvatarURL    *vo.UserAvatarURL
	// Status defaults to pending. Only fixture paths set it.
	Status *vo.UserStatus
	Now    time.Time
}

// NewUser builds a user without enforcing uniqueness or recording events.
// Registration goes through CreateUser instead.
func NewUser(p UserParams) *User {
	status := vo.UserStatusPending
	if p.Status != nil {
		status = *p.Status
	}
	return &User{
		id:           p.ID,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		name:         p.Name,
		avatarURL:    p.AvatarURL,
		status:       status,
		createdAt:    p.Now,
		updatedAt:    p.Now,
	}
}

// CreateUser registers a brand new account: the email must be unused, the
// user starts pending and a UserCreated event is recorded.
func CreateUser(ctx context.Context, checker EmailUniquenessChecker, p UserParams) (*User, error) {
	if err := checker.EnsureEmailIsUnique(ctx, p.Email); err != nil {
		return nil, err
	}
	p.Status = nil
	u := NewUser(p)
	u.record(event.NewUserCreated(u.id.String(), u.email.String(), u.name.String(), p.Now))
	return u, nil
}

// UserSnapshot is the flat persisted form of a user.
type UserSnapshot struct {
	ID           vo.UserID
	Email        vo.UserEmail
	PasswordHash vo.UserPasswordHash
	Name         vo.UserName
	AvatarURL    *vo.UserAvatarURL
	Status       vo.UserStatus
	Roles        []*Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RehydrateUser rebuilds a user loaded from storage. No events are recorded.
func RehydrateUser(s UserSnapshot) *User {
	return &User{
		id:           s.ID,
		email:        s.Email,
		passwordHash: s.PasswordHash,
		name:         s.Name,
		avatarURL:    s.AvatarURL,
		status:       s.Status,
		roles:        append([]*Role(nil), s.Roles...),
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}

func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:           u.id,
		Email:        u.email,
		PasswordHash: u.passwordHash,
		Name:         u.name,
		AvatarURL:    u.avatarURL,
		Status:       u.status,
		Roles:        u.Roles(),
		CreatedAt:    u.createdAt,
		UpdatedAt:    u.updatedAt,
	}
}

func (u *User) ID() vo.UserID                     { return u.id }
func (u *User) Email() vo.UserEmail               { return u.email }
func (u *User) PasswordHash() vo.UserPasswordHash { return u.passwordHash }
func (u *User) Name() vo.UserName                 { return u.name }
func (u *User) AvatarURL() *vo.UserAvatarURL      { return u.avatarURL }
func (u *User) Status() vo.UserStatus             { return u.status }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

// Confirm activates a pending account. Active and banned accounts are
// rejected and left untouched.
func (u *User) Confirm(now time.Time) error {
	switch {
	case u.status.IsActive():
		return domain.ErrAlreadyConfirmed
	case u.status.IsBanned():
		return domain.ErrBannedAccount
	}
	u.status = vo.UserStatusActive
	u.touch(now)
	return nil
}

func (u *User) SetEmail(email vo.UserEmail, now time.Time) {
	u.email = email
	u.touch(now)
}

func (u *User) SetName(name vo.UserName, now time.Time) {
	u.name = name
	u.touch(now)
}

func (u *User) SetAvatarURL(url *vo.UserAvatarURL, now time.Time) {
	u.avatarURL = url
	u.touch(now)
}

func (u *User) SetPasswordHash(hash vo.UserPasswordHash, now time.Time) {
	u.passwordHash = hash
	u.touch(now)
}

// SetStatus is the administrative override (ban, unban). Self-service
// activation goes through Confirm.
func (u *User) SetStatus(status vo.UserStatus, now time.Time) {
	u.status = status
	u.touch(now)
}

// AddRole attaches a role once; adding it again is a no-op.
func (u *User) AddRole(role *Role, now time.Time) {
	if u.hasRole(role.ID()) {
		return
	}
	u.roles = append(u.roles, role)
	u.touch(now)
}

func (u *User) RemoveRole(role *Role, now time.Time) {
	for i, r := range u.roles {
		if r.ID() == role.ID() {
			u.roles = append(u.roles[:i], u.roles[i+1:]...)
			u.touch(now)
			return
		}
	}
}

func (u *User) Roles() []*Role {
	return append([]*Role(nil), u.roles...)
}

// RoleNames lists the role labels, e.g. for an authentication adapter.
func (u *User) RoleNames() []string {
	out := make([]string, 0, len(u.roles))
	for _, r := range u.roles {
		out = append(out, r.Name().String())
	}
	return out
}

func (u *User) hasRole(id vo.RoleID) bool {
	for _, r := range u.roles {
		if r.ID() == id {
			return true
		}
	}
	return false
}

func (u *User) touch(now time.Time) {
	u.updatedAt = now
}
