package products

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// MemoryRepository keeps the catalog in a slice ordered by id.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Product
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := *p
	out.ID = 1
	if n := len(r.items); n > 0 {
		out.ID = r.items[n-1].ID + 1
	}
	out.Date = r.now().UTC()
	out.Available = true

	r.items = append(r.items, out)
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyProducts(r.items), nil
}

func (r *MemoryRepository) Latest(ctx context.Context, n int) ([]*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	from := max(len(r.items)-n, 0)
	return copyProducts(r.items[from:]), nil
}

func (r *MemoryRepository) ByCategory(ctx context.Context, category string, n int) ([]*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Product, 0, n)
	for i := range r.items {
		if len(out) == n {
			break
		}
		if r.items[i].Category == category {
			p := r.items[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func copyProducts(items []models.Product) []*models.Product {
	out := make([]*models.Product, len(items))
	for i := range items {
		p := items[i]
		out[i] = &p
	}
	return out
}
