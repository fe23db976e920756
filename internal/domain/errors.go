package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every workflow. Concrete failures wrap one of
// these so callers can classify them with errors.Is.
var (
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrNotFound         = errors.New("not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrAlreadyConfirmed = errors.New("user is already confirmed")
	ErrBannedAccount    = errors.New("cannot confirm a banned user")
)

var taxonomy = []error{
	ErrValidation,
	ErrConflict,
	ErrNotFound,
	ErrInvalidToken,
	ErrAlreadyConfirmed,
	ErrBannedAccount,
}

// Validationf builds an ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func Conflictf(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

// IsDomainError reports whether err belongs to the taxonomy above.
// Anything else is an infrastructure fault.
func IsDomainError(err error) bool {
	for _, target := range taxonomy {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
