// Package users is the credential store: persistence of user identity
// records, including each user's cart.
package users

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository stores user records. Emails are unique, compared byte-for-byte.
//
// Lookups return common.ErrNotFound when no record matches. Create returns
// common.ErrDuplicateEmail when the email is taken, and assigns ID and
// CreatedAt. Save overwrites the whole record (last writer wins) and returns
// common.ErrNotFound for an unknown ID.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// Mutator is implemented by stores that can run a read-modify-write of a
// single user atomically at the storage level. fn receives the current
// record and may change it; the change is persisted only if fn returns nil.
type Mutator interface {
	Mutate(ctx context.Context, id string, fn func(user *models.User) error) (*models.User, error)
}
