package response

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "smartserver/pkg/errors"
	"smartserver/pkg/logger"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes data as the whole response body.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// Error maps err onto a status and a generic JSON body. Causes are logged,
// never written to the client.
func Error(c echo.Context, err error) error {
	status, body := describe(err)

	fields := logger.Fields{
		"method": c.Request().Method,
		"path":   c.Request().URL.Path,
		"status": status,
	}
	if status >= http.StatusInternalServerError {
		logger.WithFields(fields).WithError(err).Error("request failed")
	} else {
		logger.WithFields(fields).WithError(err).Warn("request rejected")
	}

	if c.Response().Committed {
		return nil
	}
	return c.JSON(status, body)
}

// HTTPErrorHandler lets errors returned by middleware and by echo itself
// share the body shape used by handlers.
func HTTPErrorHandler(err error, c echo.Context) {
	_ = Error(c, err)
}

func describe(err error) (int, ErrorBody) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, ErrorBody{Code: appErr.Code, Message: appErr.Message}
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, ErrorBody{Code: "VALIDATION_ERROR", Message: validationMessage(validationErr)}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = m
		}
		return httpErr.Code, ErrorBody{Code: codeFor(httpErr.Code), Message: message}
	}

	return http.StatusInternalServerError, ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Invalid input data"
	}
	e := errs[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " is invalid"
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= http.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "REQUEST_ERROR"
}
