package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

// BcryptHasher hashes passwords with bcrypt at a fixed cost. The salt and
// cost are embedded in every hash it produces.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password longer than 72 bytes", common.ErrInvalidInput)
		}
		return "", err
	}
	return string(hash), nil
}

// Verify reports a mismatch as false with a nil error. Only a hash bcrypt
// cannot parse is an error.
func (h *BcryptHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrCorruptHash, err)
	}
}
