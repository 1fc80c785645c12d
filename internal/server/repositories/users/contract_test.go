package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behaviour every Repository must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("create assigns id and created_at", func(t *testing.T) {
		repo := newRepo(t)

		u, err := repo.Create(ctx, &models.User{DisplayName: "alice", Email: "a@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
		assert.NotNil(t, u.Cart)
		assert.Empty(t, u.Cart)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "h1"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &models.User{DisplayName: "other", Email: "a@x.com", PasswordHash: "h2"})
		assert.ErrorIs(t, err, common.ErrDuplicateEmail)
	})

	t.Run("email is case sensitive", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &models.User{Email: "A@x.com", PasswordHash: "h"})
		require.NoError(t, err)
	})

	t.Run("find by email and id", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, &models.User{DisplayName: "bob", Email: "b@x.com", PasswordHash: "hash"})
		require.NoError(t, err)

		byEmail, err := repo.FindByEmail(ctx, "b@x.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
		assert.Equal(t, "bob", byEmail.DisplayName)
		assert.Equal(t, "hash", byEmail.PasswordHash)

		byID, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", byID.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindByEmail(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, common.ErrNotFound)

		_, err = repo.FindByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("save overwrites cart", func(t *testing.T) {
		repo := newRepo(t)

		u, err := repo.Create(ctx, &models.User{Email: "c@x.com", PasswordHash: "h"})
		require.NoError(t, err)

		u.Cart = models.Cart{"42": 2, "7": 1}
		require.NoError(t, repo.Save(ctx, u))

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.Cart.Equal(models.Cart{"42": 2, "7": 1}), "got %v", got.Cart)

		u.Cart = models.Cart{}
		require.NoError(t, repo.Save(ctx, u))

		got, err = repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Cart)
	})

	t.Run("save unknown id", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Save(ctx, &models.User{ID: "missing", Email: "m@x.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("save cannot steal an email", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, &models.User{Email: "d@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		e, err := repo.Create(ctx, &models.User{Email: "e@x.com", PasswordHash: "h"})
		require.NoError(t, err)

		e.Email = "d@x.com"
		assert.ErrorIs(t, repo.Save(ctx, e), common.ErrDuplicateEmail)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := newRepo(t)

		u, err := repo.Create(ctx, &models.User{Email: "f@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		u.Cart["42"] = 9

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Cart.Quantity("42"))
	})
}
