package handler

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		ping       pingFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "store_up",
			ping:       func(ctx context.Context) error { return nil },
			wantStatus: http.StatusOK,
			wantBody:   "Server is running",
		},
		{
			name:       "store_down",
			ping:       func(ctx context.Context) error { return stderrors.New("server selection error") },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "Store unavailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			h := NewHealthHandler(tc.ping)
			if assert.NoError(t, h.CheckHealth(c)) {
				assert.Equal(t, tc.wantStatus, rec.Code)
				assert.Contains(t, rec.Body.String(), tc.wantBody)
				assert.NotContains(t, rec.Body.String(), "selection")
			}
		})
	}
}

func TestRoot(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if assert.NoError(t, NewHealthHandler(nil).Root(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "smart server is running", rec.Body.String())
	}
}
