package router

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupSessionRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
