package valueobject

import (
	"fmt"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
)

const (
	UserPasswordMinLength  = 8
	UserPasswordMaxLength  = 72
	userEmailMaxLength     = 255
	userNameMaxLength      = 255
	userPasswordHashMaxLen = 255
	userAvatarURLMaxLength = 500
)

type UserID string

func NewUserID(v string) (UserID, error) { return parseULID[UserID]("user id", v) }

func (id UserID) String() string { return string(id) }

// UserEmail is a syntactically valid address. Uniqueness is enforced by the
// domain service, not here.
type UserEmail string

func NewUserEmail(v string) (UserEmail, error) {
	if err := validate.Var(v, "required,email"); err != nil {
		return "", domain.Validationf("invalid email format: %s", v)
	}
	if err := maxLength("user email", v, userEmailMaxLength); err != nil {
		return "", err
	}
	return UserEmail(v), nil
}

func (e UserEmail) String() string { return string(e) }

// UserPassword is the plaintext password as typed by the user. It only lives
// for the duration of a registration and is never persisted.
type UserPassword string

func NewUserPassword(v string) (UserPassword, error) {
	if len(v) < UserPasswordMinLength {
		return "", domain.Validationf("password must be at least %d characters long", UserPasswordMinLength)
	}
	// bcrypt only accepts up to 72 bytes.
	if len(v) > UserPasswordMaxLength {
		return "", domain.Validationf("password cannot exceed %d bytes", UserPasswordMaxLength)
	}
	return UserPassword(v), nil
}

func (p UserPassword) String() string { return string(p) }

// GoString keeps the plaintext out of %#v output.
func (p UserPassword) GoString() string { return "UserPassword(***)" }

type UserPasswordHash string

func NewUserPasswordHash(v string) (UserPasswordHash, error) {
	if err := notBlank("user password hash", v); err != nil {
		return "", err
	}
	if err := maxLength("user password hash", v, userPasswordHashMaxLen); err != nil {
		return "", err
	}
	return UserPasswordHash(v), nil
}

func (h UserPasswordHash) String() string { return string(h) }

type UserName string

func NewUserName(v string) (UserName, error) {
	if err := maxLength("user name", v, userNameMaxLength); err != nil {
		return "", err
	}
	return UserName(v), nil
}

func (n UserName) String() string { return string(n) }

type UserAvatarURL string

func NewUserAvatarURL(v string) (UserAvatarURL, error) {
	if err := maxLength("user avatar url", v, userAvatarURLMaxLength); err != nil {
		return "", err
	}
	if err := validate.Var(v, "url"); err != nil {
		return "", domain.Validationf("invalid avatar url: %s", v)
	}
	return UserAvatarURL(v), nil
}

func (u UserAvatarURL) String() string { return string(u) }

// UserStatus values match the CHECK constraint on user.status.
type UserStatus int

const (
	UserStatusBanned  UserStatus = -1
	UserStatusPending UserStatus = 0
	UserStatusActive  UserStatus = 1
)

func NewUserStatus(v int) (UserStatus, error) {
	switch s := UserStatus(v); s {
	case UserStatusBanned, UserStatusPending, UserStatusActive:
		return s, nil
	default:
		return 0, domain.Validationf("invalid user status: %d. Valid values are: -1, 0, 1", v)
	}
}

func (s UserStatus) Int() int        { return int(s) }
func (s UserStatus) IsBanned() bool  { return s == UserStatusBanned }
func (s UserStatus) IsPending() bool { return s == UserStatusPending }
func (s UserStatus) IsActive() bool  { return s == UserStatusActive }

func (s UserStatus) String() string {
	switch s {
	case UserStatusBanned:
		return "banned"
	case UserStatusPending:
		return "pending"
	case UserStatusActive:
		return "active"
	default:
		return fmt.Sprintf("UserStatus(%d)", int(s))
	}
}
