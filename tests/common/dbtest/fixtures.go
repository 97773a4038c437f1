//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text behind TestPasswordHash.
const TestPassword = "password123"

const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active user with TestPassword, or returns the id
// of the existing user with that email.
func CreateTestUser(t *testing.T, db sqlc.DBTX, email, role string, rateBP int32) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, commission_rate_bp, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, strings.Split(email, "@")[0], TestPasswordHash, role, rateBP)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// CounterValue reads a sequence counter directly; 0 when the key was never used.
func CounterValue(t *testing.T, db sqlc.DBTX, key string) int64 {
	t.Helper()
	var seq int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT seq FROM sequence_counters WHERE key = $1), 0)", key).Scan(&seq)
	require.NoError(t, err)
	return seq
}

// Every public table except atlas bookkeeping, counters included, so each
// test starts numbering from 1.
const truncateAll = `
DO $$
DECLARE stmt text;
BEGIN
    SELECT 'TRUNCATE ' || string_agg(format('%I.%I', schemaname, tablename), ', ') || ' RESTART IDENTITY CASCADE'
      INTO stmt
      FROM pg_tables
     WHERE schemaname = 'public'
       AND tablename <> 'atlas_schema_revisions';
    IF stmt IS NOT NULL THEN
        EXECUTE stmt;
    END IF;
END $$`

func ResetDB(db sqlc.DBTX) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, truncateAll); err != nil {
		return errs.Wrap(err, "truncate tables")
	}
	return nil
}
