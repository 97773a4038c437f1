// Package uow runs use case callbacks inside pgx transactions.
package uow

import (
	"context"
	"log/slog"
	"time"

	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errBegin           = errs.New("begin transaction")
	errCommit          = errs.New("commit transaction")
	errRetriesExceeded = errs.New("transaction retries exhausted")
)

var (
	writeOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	readOptions  = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.SequenceConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: retryPolicy{maxRetries: cfg.MaxRetries, base: cfg.BaseBackoff},
	}
}

// Within runs fn in a ReadCommitted transaction. Counter increments made by
// fn commit or roll back with the rows that use them. Storage failures that
// carry no taxonomy mark surface as errs.ErrPersistence.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.once(ctx, writeOptions, func(ptx pgx.Tx) error {
			return fn(ctx, newTx(ptx, u.q))
		})
		if !u.policy.retryable(err) {
			break
		}
		if !u.policy.allows(attempt) {
			slog.Error("transaction retries exhausted", "attempts", attempt+1, "error", err.Error())
			err = errs.Mark(err, errRetriesExceeded)
			break
		}

		wait := u.policy.delay(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
		if werr := sleep(ctx, wait); werr != nil {
			return werr
		}
	}
	return classify(err)
}

// WithinReadOnly gives fn a single snapshot; dashboards use it to read
// several tables consistently.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return classify(u.once(ctx, readOptions, func(ptx pgx.Tx) error {
		return fn(ctx, ptx)
	}))
}

// once is one transaction attempt. The rollback after a commit is a no-op.
func (u *PostgresUoW) once(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) error {
	ptx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errBegin)
	}
	defer func() {
		if rerr := ptx.Rollback(context.WithoutCancel(ctx)); rerr != nil && !errs.Is(rerr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rerr.Error())
		}
	}()

	if err := fn(ptx); err != nil {
		return err
	}
	if err := ptx.Commit(ctx); err != nil {
		return errs.Mark(err, errCommit)
	}
	return nil
}

func classify(err error) error {
	if err == nil || errs.IsTaxonomy(err) || isContextErr(err) {
		return err
	}
	return errs.Persistence(err)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isContextErr(err error) bool {
	return errs.Is(err, context.Canceled) || errs.Is(err, context.DeadlineExceeded)
}
