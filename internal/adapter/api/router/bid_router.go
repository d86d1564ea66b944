package router

import (
	"github.com/labstack/echo/v4"

	"smartserver/internal/adapter/api/handler"
	"smartserver/internal/adapter/api/middleware"
)

func SetupBidRouter(e *echo.Echo, bidHandler *handler.BidHandler, authMiddleware *middleware.AuthMiddleware) {
	bids := e.Group("/bids")

	bids.POST("", bidHandler.CreateBid)
	bids.GET("", bidHandler.ListBids)
	bids.GET("/your-bids", bidHandler.ListMyBids, authMiddleware.Authenticate)

	// No ownership check on by-id routes; any caller may read, patch or delete.
	bids.GET("/:id", bidHandler.GetBid)
	bids.PATCH("/:id", bidHandler.UpdateBid)
	bids.DELETE("/:id", bidHandler.DeleteBid)
}
