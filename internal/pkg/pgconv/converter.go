// Package pgconv maps between domain values and pgtype columns. DATE values
// are calendar days, always carried as UTC midnight.
package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func optional[T any, P any](v *T, wrap func(T) P) P {
	var zero P
	if v == nil {
		return zero
	}
	return wrap(*v)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimestamptzPtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateFromPgtype returns the zero time for NULL.
func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	return day(pd.Time)
}

func DatePtrFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	t := day(pd.Time)
	return &t
}

// DateToPgtype drops the clock part of t in t's own location.
func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: day(t), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	return optional(t, DateToPgtype)
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	return optional(id, func(v uuid.UUID) pgtype.UUID {
		return pgtype.UUID{Bytes: v, Valid: true}
	})
}

func StringPtrToPgtype(s *string) pgtype.Text {
	return optional(s, func(v string) pgtype.Text {
		return pgtype.Text{String: v, Valid: true}
	})
}

// IsNoRows accepts both database/sql and pgx sentinels.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
