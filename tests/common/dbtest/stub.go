//go:build unit || e2e

package dbtest

import (
	"context"

	"commission-tracker/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUnexpectedSQL is returned by StubDB for every statement.
	ErrUnexpectedSQL = errs.New("statement reached the database stub")
	// ErrConnectionLost stands in for a driver failure in mocked query layers.
	ErrConnectionLost = errs.New("database connection lost")
)

// StubDB satisfies sqlc.DBTX where the query layer is mocked. SQL that slips
// past the mock fails with ErrUnexpectedSQL instead of touching a database.
type StubDB struct {
	Statements []string
}

func (s *StubDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	s.Statements = append(s.Statements, sql)
	return pgconn.CommandTag{}, errs.Wrap(ErrUnexpectedSQL, sql)
}

func (s *StubDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	s.Statements = append(s.Statements, sql)
	return nil, errs.Wrap(ErrUnexpectedSQL, sql)
}

func (s *StubDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	s.Statements = append(s.Statements, sql)
	return stubRow{err: errs.Wrap(ErrUnexpectedSQL, sql)}
}

type stubRow struct{ err error }

func (r stubRow) Scan(...any) error { return r.err }
