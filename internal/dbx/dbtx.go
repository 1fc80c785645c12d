// Package dbx provides small database helpers shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// a transaction helper, and DSN-based driver selection.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what repositories query through, so the same code runs on a
// *sql.DB or inside a *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn in a transaction. It commits only when fn succeeds and ctx
// is still live; otherwise it rolls back, so a cancelled cart update leaves
// the stored cart untouched. A panic in fn rolls back and is re-raised.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    u, err := scanUser(tx.QueryRowContext(ctx, selectUser+` WHERE id = $1 FOR UPDATE`, id))
//	    if err != nil {
//	        return err
//	    }
//	    u.Cart[key]++
//	    return save(ctx, tx, u)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
