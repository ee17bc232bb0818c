package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/handler"
	"gamezone/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	public := e.Group("/v1/auth")
	public.Use(middleware.AuthRateLimit())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/forgot-password", authHandler.ForgotPassword)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/logout", authHandler.Logout)
}
