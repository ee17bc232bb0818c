package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gamezone/internal/usecase"
)

type HealthHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

var healthHandler *HealthHandler

func SetupHealthHandler(catalogUseCase *usecase.CatalogUseCase) {
	healthHandler = &HealthHandler{catalogUseCase: catalogUseCase}
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"products": h.catalogUseCase.Size(),
		"time":     time.Now().Format(time.RFC3339),
	})
}
