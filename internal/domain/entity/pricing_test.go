package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCartExample(t *testing.T) {
	cart := NewCart()
	cart.Add(&Product{ID: "1", Price: 50}, 2)

	summary := PriceCart(cart)

	assert.InDelta(t, 100.00, summary.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, summary.Shipping, 1e-9)
	assert.InDelta(t, 8.00, summary.Tax, 1e-9)
	assert.InDelta(t, 117.99, summary.Total, 1e-9)
}

func TestPriceCartEmpty(t *testing.T) {
	summary := PriceCart(NewCart())

	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.Equal(t, 0.0, summary.Tax)
	assert.Equal(t, 0.0, summary.Total)
}

func TestPriceCartKeepsFullPrecision(t *testing.T) {
	cart := NewCart()
	cart.Add(&Product{ID: "1", Price: 33.33}, 3)

	summary := PriceCart(cart)

	// 99.99 * 0.08 carries more than two decimals; the summary keeps
	// them and only Rounded trims.
	assert.InDelta(t, 7.9992, summary.Tax, 1e-9)
	assert.InDelta(t, 8.00, summary.Rounded().Tax, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 117.99, Round2(117.99000001))
	assert.Equal(t, 8.0, Round2(7.9992))
	assert.Equal(t, 0.0, Round2(0))
}
