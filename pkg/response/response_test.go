package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "smartserver/pkg/errors"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app_error",
			err:        apperrors.Forbidden("Forbidden access", nil),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
			wantMsg:    "Forbidden access",
		},
		{
			name:       "internal_hides_cause",
			err:        apperrors.Internal("Failed to find documents", stderrors.New("server selection timeout")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Failed to find documents",
		},
		{
			name:       "echo_not_found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Not Found",
		},
		{
			name:       "plain_error",
			err:        stderrors.New("pq: secret"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, Error(c, tc.err))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.wantMsg, body.Message)
			assert.NotContains(t, rec.Body.String(), "timeout")
			assert.NotContains(t, rec.Body.String(), "secret")
		})
	}
}

func TestSuccessWritesRawBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/bids", nil), rec)

	require.NoError(t, Success(c, []map[string]interface{}{{"bid_price": 500}}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"bid_price":500}]`, rec.Body.String())
}
