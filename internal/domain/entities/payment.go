package entities

import "time"

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusPartial   PaymentStatus = "partial"
)

// Payment tracks one checkout session created for an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_id-index): external_id
//   - GSI2 (job_id-index): job_id
//
// Idempotency: the gateway delivers confirmation events at-least-once. The
// reconciler resolves them by ExternalID; flipping a payment to succeeded is
// a conditional write, so a replayed success is a no-op.

type Payment struct {
	ID            string        `json:"id"`
	JobID         string        `json:"job_id"`
	QuoteID       string        `json:"quote_id"`
	ExternalID    string        `json:"external_id"`
	Status        PaymentStatus `json:"status"`
	AmountCents   int64         `json:"amount_cents"`
	Currency      string        `json:"currency"`
	CheckoutURL   string        `json:"checkout_url,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
