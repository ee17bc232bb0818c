package handler

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/domain/entity"
	"gamezone/internal/usecase"
	"gamezone/pkg/errors"
	"gamezone/pkg/response"
)

type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
}

func NewSessionHandler(sessionUseCase *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
	}
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	uid := c.Get("uid").(string)

	snap, err := h.sessionUseCase.Snapshot(uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, snap)
}

func (h *SessionHandler) MarkWelcomeSeen(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.sessionUseCase.MarkWelcomeSeen(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Welcome screen acknowledged",
	})
}

type setFiltersRequest struct {
	ProductType []string          `json:"product_type"`
	Brand       []string          `json:"brand"`
	ConsoleLine []string          `json:"console_line"`
	Condition   []string          `json:"condition"`
	PriceRange  entity.PriceRange `json:"price_range"`
	Rating      float64           `json:"rating" validate:"gte=0,lte=5"`
	SearchQuery string            `json:"search_query"`
}

func (h *SessionHandler) SetFilters(c echo.Context) error {
	uid := c.Get("uid").(string)

	req := setFiltersRequest{
		PriceRange: entity.PriceRange{Min: entity.DefaultPriceMin, Max: entity.DefaultPriceMax},
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	criteria := entity.FilterCriteria{
		ProductType: emptyIfNil(req.ProductType),
		Brand:       emptyIfNil(req.Brand),
		ConsoleLine: emptyIfNil(req.ConsoleLine),
		Condition:   emptyIfNil(req.Condition),
		PriceRange:  req.PriceRange,
		Rating:      req.Rating,
		SearchQuery: req.SearchQuery,
	}

	if err := h.sessionUseCase.SetCriteria(uid, criteria); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, criteria)
}

// RemoveFilter clears one filter: a single value for the set-valued
// kinds, or the whole field for priceRange, rating and all.
func (h *SessionHandler) RemoveFilter(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.sessionUseCase.RemoveFilter(uid, c.Param("kind"), c.QueryParam("value")); err != nil {
		return response.Error(c, err)
	}

	snap, err := h.sessionUseCase.Snapshot(uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, snap.Criteria)
}

type navigateRequest struct {
	View      string `json:"view" validate:"required,oneof=home product-detail cart"`
	ProductID string `json:"product_id"`
}

func (h *SessionHandler) Navigate(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.sessionUseCase.Navigate(c.Request().Context(), uid, entity.View(req.View), req.ProductID); err != nil {
		return response.Error(c, err)
	}

	snap, err := h.sessionUseCase.Snapshot(uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, snap)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
