package security

import (
	"golang.org/x/crypto/bcrypt"

	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher uses bcrypt.DefaultCost when cost is zero.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain vo.UserPassword) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain.String()), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(hash vo.UserPasswordHash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash.String()), []byte(plain)) == nil
}
