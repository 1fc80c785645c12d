// Package products stores the product catalog.
package products

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists catalog products. Create assigns the next id (one past
// the current maximum) and the creation date. Delete returns
// common.ErrNotFound when no product has the id.
type Repository interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Product, error)
	// Latest returns the last n products, in ascending id order.
	Latest(ctx context.Context, n int) ([]*models.Product, error)
	// ByCategory returns the first n products of a category by id.
	ByCategory(ctx context.Context, category string, n int) ([]*models.Product, error)
}
