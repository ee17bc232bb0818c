package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/handler"
	"gamezone/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:id", cartHandler.UpdateItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
