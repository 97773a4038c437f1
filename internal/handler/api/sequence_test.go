//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/handler/api"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/httptest"
	queriesmock "commission-tracker/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSequenceHandler_Current(t *testing.T) {
	t.Run("success: reports the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockSequenceQueries(ctrl)
		router := newTestRouter(t)
		router.GET("/sequences/:key", api.NewSequenceHandler(q).Current)

		q.EXPECT().Current(gomock.Any(), "order:FB-001").Return(&queries.SequenceView{Key: "order:FB-001", Current: 3}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/sequences/order:FB-001", nil, "")

		var resp resdto.SequenceResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, int64(3), resp.Current)
	})

	t.Run("error: 422 for an invalid key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockSequenceQueries(ctrl)
		router := newTestRouter(t)
		router.GET("/sequences/:key", api.NewSequenceHandler(q).Current)

		q.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, sequence.ErrInvalidKey)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/sequences/x", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "")
	})
}
