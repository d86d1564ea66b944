package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"smartserver/internal/domain/entity"
	"smartserver/pkg/errors"
	"smartserver/pkg/logger"
)

const (
	ContextKeyEmail = "token_email"
	ContextKeyUID   = "uid"
)

type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}

type AuthMiddleware struct {
	verifier IdentityVerifier
}

func NewAuthMiddleware(verifier IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			logger.Debug("No Authorization header on %s %s", c.Request().Method, c.Path())
			return unauthorized()
		}

		idToken, ok := bearerToken(authHeader)
		if !ok {
			return unauthorized()
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return unauthorized()
		}

		c.Set(ContextKeyEmail, identity.Email)
		c.Set(ContextKeyUID, identity.UID)

		return next(c)
	}
}

// VerifiedEmail returns the identity attached by Authenticate.
func VerifiedEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyEmail).(string)
	return email
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized() error {
	return errors.Unauthorized("Unauthorized access", nil)
}
