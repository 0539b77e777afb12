package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bookcatalog/internal/platform/logger"
)

// Transactor runs a function inside a database transaction. Repositories
// that resolve their querier through Conn join the transaction automatically.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var ErrTxNotFound = errors.New("tx not found in context")

type txKey struct{}

var _ Transactor = (*PgxTransactor)(nil)

type PgxTransactor struct {
	logger *zap.Logger
	db     TxBeginner
}

func NewTransactor(logger *zap.Logger, db TxBeginner) *PgxTransactor {
	return &PgxTransactor{logger: logger, db: db}
}

// WithTx commits when fn succeeds and rolls back otherwise. A panic in fn
// rolls back and is re-raised. Commit failures are returned to the caller.
func (t *PgxTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) (txErr error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			rbErr := tx.Rollback(txCtx)
			logger.CheckError(rbErr, t.logger, "failed rollback of tx after panic")
			panic(p)
		}
		if txErr != nil {
			rbErr := tx.Rollback(txCtx)
			logger.CheckError(rbErr, t.logger, "failed rollback of tx")
			return
		}
		if cErr := tx.Commit(txCtx); cErr != nil {
			logger.CheckError(cErr, t.logger, "failed commit of tx")
			txErr = fmt.Errorf("commit transaction: %w", cErr)
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}
	return nil
}

// TxFrom returns the transaction carried by ctx.
func TxFrom(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, ErrTxNotFound
	}
	return tx, nil
}

// Conn returns the transaction in ctx when there is one, db otherwise.
func Conn(ctx context.Context, db DB) DB {
	if tx, err := TxFrom(ctx); err == nil {
		return tx
	}
	return db
}
