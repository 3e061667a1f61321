package entities

import "time"

// PayoutStatus represents the contractor settlement state, tracked
// independently of the client's payment.

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusInitiated PayoutStatus = "initiated"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

// Payout is the contractor's share of a completed job's approved quote.
//
// Storage model (DynamoDB):
//   - PK: job_id
//
// We purposely use the job id as PK to guarantee exactly one payout per job:
// a retried completion command hits attribute_not_exists and is ignored.

type Payout struct {
	ID           string       `json:"id"`
	JobID        string       `json:"job_id"`
	ContractorID string       `json:"contractor_id"`
	AmountCents  int64        `json:"amount_cents"`
	Status       PayoutStatus `json:"status"`
	Method       string       `json:"method"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	PaidAt       *time.Time   `json:"paid_at,omitempty"`
}
