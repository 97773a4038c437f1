//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody is the API error envelope.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// AssertSuccessResponse checks the status and decodes the body into target
// when target is non-nil and the body is not empty.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) bool {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return false
	}
	if target == nil || w.Body.Len() == 0 {
		return true
	}
	return assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the envelope message
// contains expectedMsg (skipped when empty). The decoded body is returned for
// detail checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body ErrorBody
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error envelope: %s", w.Body.String()) {
		return body
	}
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equalf(t, v, w.Header().Get(k), "header %s", k)
	}
}
