package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"smartserver/pkg/logger"
)

// RequestLogger logs each request with its status and latency.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// let the error handler write the response so the status is final
			c.Error(err)
		}

		res := c.Response()
		logger.WithFields(logger.Fields{
			"method":     c.Request().Method,
			"path":       c.Request().URL.Path,
			"status":     res.Status,
			"latency":    time.Since(start).String(),
			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}).Info("HTTP Request")

		return nil
	}
}
