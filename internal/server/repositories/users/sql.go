package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLRepository implements Repository and Mutator on PostgreSQL or SQLite.
// Queries use $n placeholders, which both drivers accept.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
	now     func() time.Time
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

const selectUser = `SELECT id, display_name, email, password_hash, cart, created_at FROM users`

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := user.Clone()
	u.ID = uuid.NewString()
	u.CreatedAt = r.now().UTC()

	cart, err := encodeCart(u.Cart)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (id, display_name, email, password_hash, cart, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id`

	var id string
	err = r.db.QueryRowContext(ctx, query,
		u.ID, u.DisplayName, u.Email, u.PasswordHash, cart, u.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *SQLRepository) Save(ctx context.Context, user *models.User) error {
	return save(ctx, r.db, user)
}

// Mutate locks the user row for the duration of a transaction (SELECT ...
// FOR UPDATE on PostgreSQL; SQLite serialises writers on its own), applies
// fn and writes the record back before committing.
func (r *SQLRepository) Mutate(ctx context.Context, id string, fn func(user *models.User) error) (*models.User, error) {
	query := selectUser + ` WHERE id = $1`
	if r.dialect == dbx.DialectPostgres {
		query += ` FOR UPDATE`
	}

	var out *models.User
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := scanUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}
		if err := fn(u); err != nil {
			return err
		}
		if err := save(ctx, tx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func save(ctx context.Context, db dbx.DBTX, user *models.User) error {
	cart, err := encodeCart(user.Cart)
	if err != nil {
		return err
	}

	query :=
		`UPDATE users
		 SET display_name = $2, email = $3, password_hash = $4, cart = $5
		 WHERE id = $1`

	res, err := db.ExecContext(ctx, query, user.ID, user.DisplayName, user.Email, user.PasswordHash, cart)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var cart []byte

	err := row.Scan(&u.ID, &u.DisplayName, &u.Email, &u.PasswordHash, &cart, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	u.Cart, err = decodeCart(cart)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", u.ID, err)
	}

	return u, nil
}

func encodeCart(c models.Cart) (string, error) {
	if c == nil {
		c = models.Cart{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return string(b), nil
}

func decodeCart(b []byte) (models.Cart, error) {
	c := models.Cart{}
	if len(b) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return false
}
