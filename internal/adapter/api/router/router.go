package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"smartserver/internal/adapter/api"
	"smartserver/internal/adapter/api/handler"
	"smartserver/internal/adapter/api/middleware"
	"smartserver/pkg/response"
)

const bodyLimit = "1M"

type Handlers struct {
	Health  *handler.HealthHandler
	Product *handler.ProductHandler
	Bid     *handler.BidHandler
}

// New builds the echo instance with the shared middleware chain and every route.
func New(h Handlers, authMiddleware *middleware.AuthMiddleware, allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: allowOrigins,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	Setup(e, h, authMiddleware)
	return e
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e, h.Health)
	SetupProductRouter(e, h.Product, h.Bid, authMiddleware)
	SetupBidRouter(e, h.Bid, authMiddleware)
}
