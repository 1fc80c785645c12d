package products

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type SQLRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, now: time.Now}
}

const selectProduct = `SELECT id, name, image, category, new_price, old_price, date, available FROM products`

func (r *SQLRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	out := *p
	out.Date = r.now().UTC()
	out.Available = true

	// Two concurrent creates may compute the same id; the primary key rejects
	// the loser instead of silently overwriting.
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM products`).Scan(&out.ID); err != nil {
			return err
		}

		query :=
			`INSERT INTO products (id, name, image, category, new_price, old_price, date, available)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

		_, err := tx.ExecContext(ctx, query,
			out.ID, out.Name, out.Image, out.Category, out.NewPrice, out.OldPrice, out.Date, out.Available)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
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

func (r *SQLRepository) List(ctx context.Context) ([]*models.Product, error) {
	return r.query(ctx, selectProduct+` ORDER BY id`)
}

func (r *SQLRepository) Latest(ctx context.Context, n int) ([]*models.Product, error) {
	items, err := r.query(ctx, selectProduct+` ORDER BY id DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	slices.Reverse(items)
	return items, nil
}

func (r *SQLRepository) ByCategory(ctx context.Context, category string, n int) ([]*models.Product, error) {
	return r.query(ctx, selectProduct+` WHERE category = $1 ORDER BY id LIMIT $2`, category, n)
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Product, 0)
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice, &p.Date, &p.Available); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
