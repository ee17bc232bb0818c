package handler

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/usecase"
	"gamezone/pkg/errors"
	"gamezone/pkg/response"
)

type CartHandler struct {
	sessionUseCase *usecase.SessionUseCase
}

func NewCartHandler(sessionUseCase *usecase.SessionUseCase) *CartHandler {
	return &CartHandler{
		sessionUseCase: sessionUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	snap, err := h.sessionUseCase.Snapshot(uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": snap.Cart,
		"count": snap.CartCount,
		"total": snap.CartTotal,
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

func (h *CartHandler) AddItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.sessionUseCase.AddToCart(c.Request().Context(), uid, req.ProductID, req.Quantity); err != nil {
		return response.Error(c, err)
	}

	return h.GetCart(c)
}

// Quantities below 1 (zero included) fall through to the ledger's
// no-op rule and just echo the unchanged cart back.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.sessionUseCase.UpdateQuantity(uid, c.Param("id"), req.Quantity); err != nil {
		return response.Error(c, err)
	}

	return h.GetCart(c)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.sessionUseCase.RemoveItem(uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return h.GetCart(c)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.sessionUseCase.ClearCart(uid); err != nil {
		return response.Error(c, err)
	}

	return h.GetCart(c)
}
