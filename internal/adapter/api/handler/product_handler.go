package handler

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/usecase"
	"gamezone/pkg/response"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	sessionUseCase *usecase.SessionUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase, sessionUseCase *usecase.SessionUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
		sessionUseCase: sessionUseCase,
	}
}

// ListProducts applies the caller's session criteria to the in-memory
// catalog. Anonymous callers browse with default criteria. A "q" query
// parameter updates the session's search query before filtering, which
// is how search-as-you-type reaches the filter engine.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	if q := c.QueryParam("q"); q != "" || c.QueryParams().Has("q") {
		if uid != "" {
			h.sessionUseCase.SetSearchQuery(uid, q)
		}
	}

	criteria := h.sessionUseCase.Criteria(uid)
	if uid == "" {
		if q := c.QueryParam("q"); q != "" {
			criteria.SearchQuery = q
		}
	}

	products := h.catalogUseCase.List(criteria)

	return response.Success(c, map[string]interface{}{
		"items": products,
		"total": len(products),
	})
}

// GetProduct returns one product and, for signed-in callers, moves
// their session to the product's detail view.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		h.sessionUseCase.ViewProduct(uid, product)
	}

	return response.Success(c, product)
}
