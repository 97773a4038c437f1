package api

import "commission-tracker/internal/usecase/queries"

// nextCursor renders the last page as null.
func nextCursor(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	return &c.After
}
