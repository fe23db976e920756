package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/security"
)

func TestBcryptHasher(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash(vo.UserPassword("password123"))
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.Verify(vo.UserPasswordHash(hashed), "password123"))
	assert.False(t, h.Verify(vo.UserPasswordHash(hashed), "password124"))
	assert.False(t, h.Verify("not-a-hash", "password123"))
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("password123")
	require.NoError(t, err)
	b, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
