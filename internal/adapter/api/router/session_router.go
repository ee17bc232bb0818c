package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/handler"
	"gamezone/internal/adapter/api/middleware"
)

func SetupSessionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	sessionHandler := handler.GetSessionHandler()

	session := e.Group("/v1/session")
	session.Use(authMiddleware.Authenticate)
	session.GET("", sessionHandler.GetSession)
	session.POST("/welcome", sessionHandler.MarkWelcomeSeen)
	session.PUT("/filters", sessionHandler.SetFilters)
	session.DELETE("/filters/:kind", sessionHandler.RemoveFilter)
	session.POST("/navigate", sessionHandler.Navigate)
}
