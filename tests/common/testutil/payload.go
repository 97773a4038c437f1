//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one request payload in place.
type Edit func(map[string]any)

// Body turns a request DTO into its JSON object form and applies edits in
// order, so table tests can describe a bad payload as a delta from a good one.
func Body(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, e := range edits {
		if e != nil {
			e(m)
		}
	}
	return m
}

// Set replaces key; a nil value removes it.
func Set(key string, value any) Edit {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

func Drop(keys ...string) Edit {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
