package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// EncodeAfterCursor uses microsecond precision to match PostgreSQL timestamps.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor encoding")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("invalid cursor format: expected '<micros>-<uuid>'")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid timestamp")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid UUID")
	}
	return time.UnixMicro(ts).UTC(), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) isFirstPage() bool {
	return c == nil || c.After == ""
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page fetches limit+1 rows to learn whether another page exists.
func page[T any](
	cursor *Cursor,
	limit int,
	first func(limit int32) ([]T, error),
	keyset func(after time.Time, afterID uuid.UUID, limit int32) ([]T, error),
	key func(T) (time.Time, uuid.UUID),
) ([]T, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var rows []T
	var err error
	if cursor.isFirstPage() {
		rows, err = first(fetch)
	} else {
		after, afterID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = keyset(after, afterID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		t, id := key(rows[limit-1])
		next = &Cursor{After: EncodeAfterCursor(t, id)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
