// Package auth holds the identity primitives: stateless session tokens,
// password hashing and the request-context key for the authenticated user.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the user id under "id".
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenManager issues and verifies HS256 session tokens. No token state is
// kept on the server.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for userID. Claims carry whole seconds, so exp is
// rounded up and the token never expires before issue time plus ttl.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	if whole := exp.Truncate(time.Second); !whole.Equal(exp) {
		exp = whole.Add(time.Second)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify returns the user id embedded in tokenString. A token is expired
// from the second its exp claim names.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", common.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidSignature
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidSignature
	}

	return claims.UserID, nil
}
