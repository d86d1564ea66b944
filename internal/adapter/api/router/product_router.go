package router

import (
	"github.com/labstack/echo/v4"

	"smartserver/internal/adapter/api/handler"
	"smartserver/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, bidHandler *handler.BidHandler, authMiddleware *middleware.AuthMiddleware) {
	products := e.Group("/products")

	products.POST("", productHandler.CreateProduct, authMiddleware.Authenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/recent", productHandler.ListRecentProducts)
	products.GET("/your-products", productHandler.ListMyProducts, authMiddleware.Authenticate)
	products.GET("/bids/:productId", bidHandler.ListProductBids)

	// No ownership check on by-id routes; any caller may read, patch or delete.
	products.GET("/:id", productHandler.GetProduct)
	products.PATCH("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
}
