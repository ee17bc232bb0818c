package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamezone/internal/domain/entity"
	"gamezone/internal/domain/repository"
	"gamezone/internal/domain/service"
	"gamezone/internal/infrastructure/websocket"
	"gamezone/pkg/errors"
	"gamezone/pkg/logger"
)

// CheckoutUseCase prices the session cart and runs the payment flow.
type CheckoutUseCase struct {
	sessions  *SessionUseCase
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	payments  service.PaymentProcessor
	events    *websocket.Manager
}

func NewCheckoutUseCase(
	sessions *SessionUseCase,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	payments service.PaymentProcessor,
	events *websocket.Manager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:  sessions,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		payments:  payments,
		events:    events,
	}
}

// Quote derives the payable total from the current cart without any
// side effects.
func (uc *CheckoutUseCase) Quote(uid string) (*entity.OrderSummary, error) {
	cart, err := uc.sessions.Cart(uid)
	if err != nil {
		return nil, err
	}
	summary := entity.PriceCart(cart)
	return &summary, nil
}

type PayResult struct {
	OrderID       string              `json:"order_id"`
	TransactionID string              `json:"transaction_id"`
	Summary       entity.OrderSummary `json:"summary"`
}

// Pay charges the snapshot taken at the start of the call, records the
// order and settles exactly those lines out of the cart; anything the
// user added mid-charge stays in the cart. A declined charge leaves
// the cart untouched so the user can retry.
func (uc *CheckoutUseCase) Pay(ctx context.Context, uid, paymentMethod string) (*PayResult, error) {
	cart, err := uc.sessions.Cart(uid)
	if err != nil {
		return nil, err
	}
	if cart.Count() == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	lines := cart.Lines()
	summary := entity.PriceCart(cart)
	orderID := uuid.New().String()

	result, err := uc.payments.Charge(ctx, service.ChargeRequest{
		OrderID:       orderID,
		Amount:        entity.Round2(summary.Total),
		PaymentMethod: paymentMethod,
		CustomerEmail: user.Email,
	})
	if err != nil {
		uc.events.Notify(uid, websocket.Event{Type: "checkout", Payload: "declined"})
		return nil, err
	}

	order := &entity.Order{
		ID:            orderID,
		UserID:        uid,
		Lines:         lines,
		Summary:       summary,
		TransactionID: result.TransactionID,
		Status:        "paid",
		CreatedAt:     time.Now(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// The charge already settled; keep going but leave a trace.
		logger.Error("Failed to persist order %s after charge %s: %v", orderID, result.TransactionID, err)
	}

	if err := uc.sessions.SettleCart(uid, lines); err != nil {
		logger.Warn("Could not settle cart after checkout for %s: %v", uid, err)
	}

	uc.events.Notify(uid, websocket.Event{Type: "checkout", Payload: map[string]string{
		"order_id":       orderID,
		"transaction_id": result.TransactionID,
	}})

	return &PayResult{
		OrderID:       orderID,
		TransactionID: result.TransactionID,
		Summary:       summary,
	}, nil
}

// Orders lists the user's past checkouts, newest first.
func (uc *CheckoutUseCase) Orders(ctx context.Context, uid string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUserID(ctx, uid, limit, offset)
}
