package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamezone/pkg/errors"
	"gamezone/pkg/logger"
)

// ChargeRequest describes a single payment attempt for an order total.
type ChargeRequest struct {
	OrderID       string
	Amount        float64
	PaymentMethod string // "card", "momo", "bank_transfer"
	CustomerEmail string
}

// ChargeResult is returned when a charge settles.
type ChargeResult struct {
	TransactionID string
	Status        string
	ProcessedAt   time.Time
}

// PaymentProcessor is the strategy interface over the payment
// collaborator. The core only ever sees a pass/fail outcome plus a
// transaction reference.
type PaymentProcessor interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SandboxPaymentProcessor simulates the hosted payment gateway for demo
// builds: a configurable slice of charges is declined at random after a
// short artificial settlement delay. Never use this outside a sandbox
// environment.
type SandboxPaymentProcessor struct {
	successRate float64
	delay       time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSandboxPaymentProcessor(successRate float64, delay time.Duration) *SandboxPaymentProcessor {
	if successRate < 0 || successRate > 1 {
		successRate = 0.9
	}
	return &SandboxPaymentProcessor{
		successRate: successRate,
		delay:       delay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *SandboxPaymentProcessor) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	logger.Info("Processing sandbox payment for order %s, amount %.2f", req.OrderID, req.Amount)

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.mu.Lock()
	declined := p.rng.Float64() >= p.successRate
	p.mu.Unlock()

	if declined {
		logger.Warn("Sandbox payment declined for order %s", req.OrderID)
		return nil, errors.BadRequest("Payment was declined", nil)
	}

	return &ChargeResult{
		TransactionID: fmt.Sprintf("sandbox-%s", uuid.New().String()),
		Status:        "settled",
		ProcessedAt:   time.Now(),
	}, nil
}

// StaticPaymentProcessor settles every charge deterministically. It is
// the test double for checkout flows; Fail flips it into a processor
// that declines everything.
type StaticPaymentProcessor struct {
	Fail bool
}

func (p *StaticPaymentProcessor) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if p.Fail {
		return nil, errors.BadRequest("Payment was declined", nil)
	}
	return &ChargeResult{
		TransactionID: "static-" + req.OrderID,
		Status:        "settled",
		ProcessedAt:   time.Now(),
	}, nil
}
