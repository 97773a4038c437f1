// Hand-maintained in sqlc's output layout. Keep in sync with queries/sequences.sql.

package sqlc

import (
	"context"
)

const allocateNextSequence = `-- name: AllocateNextSequence :one
INSERT INTO sequence_counters (key, seq)
VALUES ($1, 1)
ON CONFLICT (key) DO UPDATE
    SET seq        = sequence_counters.seq + 1,
        updated_at = now()
RETURNING seq
`

// Creates the counter at 0 when missing and increments it in the same
// statement; the row lock serialises callers per key.
func (q *Queries) AllocateNextSequence(ctx context.Context, db DBTX, key string) (int64, error) {
	row := db.QueryRow(ctx, allocateNextSequence, key)
	var seq int64
	err := row.Scan(&seq)
	return seq, err
}

const getSequence = `-- name: GetSequence :one
SELECT seq FROM sequence_counters WHERE key = $1
`

func (q *Queries) GetSequence(ctx context.Context, db DBTX, key string) (int64, error) {
	row := db.QueryRow(ctx, getSequence, key)
	var seq int64
	err := row.Scan(&seq)
	return seq, err
}
