package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

type txKey struct{}

// sqlTx is what *sql.DB and *sql.Tx have in common.
type sqlTx interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func txFromContext(ctx context.Context) (sqlTx, bool) {
	tx, ok := ctx.Value(txKey{}).(sqlTx)
	return tx, ok
}

func inTx(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.dbWrite
}

// extractTxRead stays on the transaction when there is one so reads see its own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.dbRead
}

// Atomic runs steps in one transaction on the write pool. A nested call joins the
// transaction already in ctx; only the outermost call commits or rolls back.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if inTx(ctx) {
		return steps(ctx, r)
	}

	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic in transaction: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
			return
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit transaction: %w", err)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.COMMIT]", xlog.Err(err))
			return
		}
		xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
	}()

	return steps(context.WithValue(ctx, txKey{}, tx), r)
}
