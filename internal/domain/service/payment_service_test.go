package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProcessorSettles(t *testing.T) {
	p := &StaticPaymentProcessor{}

	result, err := p.Charge(context.Background(), ChargeRequest{OrderID: "o1", Amount: 117.99})
	require.NoError(t, err)
	assert.Equal(t, "static-o1", result.TransactionID)
	assert.Equal(t, "settled", result.Status)
}

func TestStaticProcessorDeclines(t *testing.T) {
	p := &StaticPaymentProcessor{Fail: true}

	_, err := p.Charge(context.Background(), ChargeRequest{OrderID: "o1", Amount: 10})
	assert.Error(t, err)
}

func TestSandboxProcessorFullSuccessRate(t *testing.T) {
	p := NewSandboxPaymentProcessor(1.0, 0)

	for i := 0; i < 20; i++ {
		result, err := p.Charge(context.Background(), ChargeRequest{OrderID: "o1", Amount: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, result.TransactionID)
	}
}

func TestSandboxProcessorZeroSuccessRate(t *testing.T) {
	p := NewSandboxPaymentProcessor(0, 0)

	_, err := p.Charge(context.Background(), ChargeRequest{OrderID: "o1", Amount: 10})
	assert.Error(t, err)
}

func TestSandboxProcessorHonorsCancellation(t *testing.T) {
	p := NewSandboxPaymentProcessor(1.0, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Charge(ctx, ChargeRequest{OrderID: "o1", Amount: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSandboxProcessorClampsBadRate(t *testing.T) {
	p := NewSandboxPaymentProcessor(3.5, 0)
	assert.InDelta(t, 0.9, p.successRate, 1e-9)
}
