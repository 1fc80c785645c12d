package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/migrations"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// goose dialect and embedded migration directory per SQL backend
var migrationTargets = map[dbx.Dialect]struct {
	goose string
	dir   string
}{
	dbx.DialectPostgres: {goose: "postgres", dir: "postgres"},
	dbx.DialectSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// SQLRepositoryManager vends repositories sharing one *sql.DB.
type SQLRepositoryManager struct {
	db       *sql.DB
	dialect  dbx.Dialect
	users    *users.SQLRepository
	products *products.SQLRepository
}

func NewSQLRepositoryManager(db *sql.DB, dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:       db,
		dialect:  dialect,
		users:    users.NewSQLRepository(db, dialect),
		products: products.NewSQLRepository(db),
	}
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLRepositoryManager) Products() products.Repository {
	return m.products
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	target, ok := migrationTargets[m.dialect]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", m.dialect)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(target.goose); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, target.dir); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
