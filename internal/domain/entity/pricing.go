package entity

import "math"

// Flat checkout rates. Tax has no jurisdiction logic and shipping is a
// single tier waived only for an empty cart.
const (
	ShippingFlatRate = 9.99
	TaxRate          = 0.08
)

// OrderSummary is the pricing breakdown computed at checkout time. All
// fields carry full precision; rounding happens only when a value is
// displayed or transmitted.
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PriceCart derives the payable total from a cart snapshot.
func PriceCart(c *Cart) OrderSummary {
	subtotal := c.Total()

	shipping := 0.0
	if subtotal > 0 {
		shipping = ShippingFlatRate
	}

	tax := subtotal * TaxRate

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Round2 rounds a monetary value to two decimal places for display or
// transmission.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of the summary with every field rounded to two
// decimal places.
func (s OrderSummary) Rounded() OrderSummary {
	return OrderSummary{
		Subtotal: Round2(s.Subtotal),
		Shipping: Round2(s.Shipping),
		Tax:      Round2(s.Tax),
		Total:    Round2(s.Total),
	}
}
