package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/handler"
	"gamezone/internal/adapter/api/middleware"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.GET("/quote", checkoutHandler.Quote)
	checkout.POST("/pay", checkoutHandler.Pay, middleware.PaymentRateLimit())

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", checkoutHandler.ListOrders)
}
