package products

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []*models.Product) []int64 {
	out := make([]int64, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func seed(t *testing.T, repo Repository, categories ...string) {
	t.Helper()
	for i, c := range categories {
		_, err := repo.Create(context.Background(), &models.Product{
			Name:     "p",
			Image:    "http://img/x.png",
			Category: c,
			NewPrice: float64(10 + i),
			OldPrice: float64(20 + i),
		})
		require.NoError(t, err)
	}
}

func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("ids are sequential from one", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p, err := repo.Create(ctx, &models.Product{Name: "shirt", Category: "men", NewPrice: 50.5, OldPrice: 80})
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.True(t, p.Available)
		assert.False(t, p.Date.IsZero())

		seed(t, repo, "women", "kid")

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(all))
		assert.Equal(t, "shirt", all[0].Name)
		assert.InDelta(t, 50.5, all[0].NewPrice, 0.0001)
	})

	t.Run("id follows the current maximum after delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		seed(t, repo, "men", "men", "men")

		require.NoError(t, repo.Delete(ctx, 3))
		p, err := repo.Create(ctx, &models.Product{Name: "again", Category: "men"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.ID)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo := newRepo(t)
		all, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("latest keeps ascending order of the tail", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		seed(t, repo, "a", "b", "c", "d", "e")

		got, err := repo.Latest(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 4, 5}, ids(got))

		got, err = repo.Latest(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))
	})

	t.Run("by category respects limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		seed(t, repo, "women", "men", "women", "women", "kid", "women", "women")

		got, err := repo.ByCategory(ctx, "women", 4)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4, 6}, ids(got))

		got, err = repo.ByCategory(ctx, "none", 4)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
