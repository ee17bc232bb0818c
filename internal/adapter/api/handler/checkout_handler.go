package handler

import (
	"github.com/labstack/echo/v4"

	"gamezone/internal/domain/entity"
	"gamezone/internal/usecase"
	"gamezone/pkg/errors"
	"gamezone/pkg/response"
	"gamezone/pkg/utils"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// Quote returns the pricing breakdown for the session cart, rounded for
// transmission.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.checkoutUseCase.Quote(uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary.Rounded())
}

type payRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card momo bank_transfer"`
}

func (h *CheckoutHandler) Pay(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req payRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.checkoutUseCase.Pay(c.Request().Context(), uid, req.PaymentMethod)
	if err != nil {
		return response.Error(c, err)
	}

	result.Summary = result.Summary.Rounded()
	return response.Success(c, result)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.checkoutUseCase.Orders(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	rounded := make([]*entity.Order, len(orders))
	for i, order := range orders {
		o := *order
		o.Summary = o.Summary.Rounded()
		rounded[i] = &o
	}

	return response.Paginated(c, rounded, total, pagination.Page, pagination.PageSize)
}
