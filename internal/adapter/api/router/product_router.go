package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/handler"
	"gamezone/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// Browsing is open to everyone; a signed-in caller gets their
	// session criteria and navigation applied.
	products := e.Group("/v1/products")
	products.Use(authMiddleware.OptionalAuthenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
}
