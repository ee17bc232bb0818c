package entity

import "time"

// Order is the persisted record of a completed checkout: the cart lines
// as purchased, the pricing breakdown that was charged, and the payment
// transaction reference.
type Order struct {
	ID            string       `json:"id" firestore:"id"`
	UserID        string       `json:"user_id" firestore:"userId"`
	Lines         []CartLine   `json:"lines" firestore:"lines"`
	Summary       OrderSummary `json:"summary" firestore:"summary"`
	TransactionID string       `json:"transaction_id" firestore:"transactionId"`
	Status        string       `json:"status" firestore:"status"`
	CreatedAt     time.Time    `json:"created_at" firestore:"createdAt"`
}
