package dbx

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names a supported storage backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
	DialectMemory   Dialect = "memory"
)

// driverNames maps a SQL dialect to its registered database/sql driver.
var driverNames = map[Dialect]string{
	DialectPostgres: "pgx",
	DialectSQLite:   "sqlite",
}

// ParseDSN detects the dialect from the DSN scheme and returns the
// connection string the driver expects.
//
//	postgres://... or postgresql://...  → postgres, DSN unchanged
//	sqlite:<path or :memory:>           → sqlite, prefix stripped
//	memory:                             → in-process store, no connection
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite:"):
		path := strings.TrimPrefix(dsn, "sqlite:")
		path = strings.TrimPrefix(path, "//")
		if path == "" {
			return "", "", fmt.Errorf("sqlite DSN %q has no path", dsn)
		}
		return DialectSQLite, path, nil
	case dsn == "memory:" || dsn == "memory":
		return DialectMemory, "", nil
	default:
		return "", "", fmt.Errorf("unsupported DSN scheme: %q", dsn)
	}
}

// Open opens a database handle for a SQL dialect. It does not ping.
func Open(dialect Dialect, conn string) (*sql.DB, error) {
	driver, ok := driverNames[dialect]
	if !ok {
		return nil, fmt.Errorf("dialect %q has no SQL driver", dialect)
	}

	db, err := sql.Open(driver, conn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if dialect == DialectSQLite {
		// a single writer keeps sqlite from returning SQLITE_BUSY under load
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
