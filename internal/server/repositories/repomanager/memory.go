package repomanager

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps all state in process. Data is lost on exit.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	products *products.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		products: products.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Products() products.Repository {
	return m.products
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
