// Package repomanager selects a storage backend from the DSN, vends its
// repositories and runs the embedded schema migrations (via goose).
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Products() products.Repository
	Close() error
}

// NewRepositoryManager picks the backend by DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite: uses modernc sqlite and
// memory: keeps everything in process.
func NewRepositoryManager(dsn string) (RepositoryManager, error) {
	dialect, conn, err := dbx.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	if dialect == dbx.DialectMemory {
		return NewMemoryRepositoryManager(), nil
	}

	db, err := dbx.Open(dialect, conn)
	if err != nil {
		return nil, err
	}

	return NewSQLRepositoryManager(db, dialect), nil
}
