package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UserService registers shoppers and logs them in. Both operations return a
// fresh session token.
type UserService struct {
	users        users.Repository
	hasher       auth.PasswordHasher
	tokens       auth.TokenIssuer
	storeTimeout time.Duration
}

func NewUserService(repo users.Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, storeTimeout time.Duration) *UserService {
	return &UserService{
		users:        repo,
		hasher:       hasher,
		tokens:       tokens,
		storeTimeout: storeTimeout,
	}
}

type signupInput struct {
	DisplayName string
	Email       string
	Password    string
}

func (in signupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.DisplayName, validation.Length(0, 200)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Password, validation.Required),
	)
}

// Signup registers a shopper and returns a session token with the new user
// id. A known email is rejected before the rest of the input is looked at;
// Create still enforces uniqueness for concurrent signups.
func (s *UserService) Signup(ctx context.Context, displayName, email, password string) (token, userID string, err error) {
	_, err = callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
		return s.users.FindByEmail(ctx, email)
	})
	switch {
	case err == nil:
		return "", "", common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrNotFound):
		return "", "", err
	}

	in := signupInput{DisplayName: displayName, Email: email, Password: password}
	if err := in.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
		return s.users.Create(ctx, &models.User{
			DisplayName:  displayName,
			Email:        email,
			PasswordHash: hash,
			Cart:         models.Cart{},
		})
	})
	if err != nil {
		return "", "", err
	}

	token, err = s.issue(user.ID)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}

// Login checks the password only when the email is known.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
		return s.users.FindByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrWrongEmail
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("user %s: %w", user.ID, err)
	}
	if !ok {
		return "", common.ErrWrongPassword
	}

	return s.issue(user.ID)
}

func (s *UserService) issue(userID string) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}
