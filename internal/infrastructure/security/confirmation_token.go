package security

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// ConfirmationTokenType discriminates confirmation tokens from other tokens
// signed with the same secret.
const ConfirmationTokenType = "email_confirmation"

// DefaultConfirmationTTL is how long a confirmation link stays valid.
const DefaultConfirmationTTL = 24 * time.Hour

type ConfirmationClaims struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

type clock interface {
	Now() time.Time
}

// ConfirmationTokens signs and verifies HS256 confirmation tokens and builds
// the public confirmation link around them.
type ConfirmationTokens struct {
	secret  []byte
	ttl     time.Duration
	baseURL string
	clock   clock
}

func NewConfirmationTokens(secret string, ttl time.Duration, baseURL string, c clock) *ConfirmationTokens {
	if ttl <= 0 {
		ttl = DefaultConfirmationTTL
	}
	return &ConfirmationTokens{
		secret:  []byte(secret),
		ttl:     ttl,
		baseURL: strings.TrimRight(baseURL, "/"),
		clock:   c,
	}
}

// Issue signs a token for the user valid from now until now+ttl.
func (t *ConfirmationTokens) Issue(userID vo.UserID) (string, error) {
	now := t.clock.Now()
	claims := &ConfirmationClaims{
		UserID: userID.String(),
		Type:   ConfirmationTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Generate returns the confirmation link, with the token as the last path segment.
func (t *ConfirmationTokens) Generate(userID vo.UserID) (string, error) {
	token, err := t.Issue(userID)
	if err != nil {
		return "", err
	}
	return t.baseURL + "/" + url.PathEscape(token), nil
}

// Decode verifies signature, expiry and type and returns the embedded user id.
func (t *ConfirmationTokens) Decode(token string) (vo.UserID, error) {
	claims := &ConfirmationClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Type != ConfirmationTokenType {
		return "", fmt.Errorf("%w: unexpected token type %q", domain.ErrInvalidToken, claims.Type)
	}
	id, err := vo.NewUserID(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return id, nil
}
