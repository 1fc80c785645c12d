package products

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository_Contract(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) Repository {
		return NewMemoryRepository()
	})
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, &models.Product{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
