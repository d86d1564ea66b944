package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"smartserver/internal/domain/repository"
	"smartserver/pkg/logger"
)

const pingTimeout = 3 * time.Second

type HealthHandler struct {
	store repository.Pinger
}

func NewHealthHandler(store repository.Pinger) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "smart server is running")
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Error("store ping failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Store unavailable",
			"time":   time.Now().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
