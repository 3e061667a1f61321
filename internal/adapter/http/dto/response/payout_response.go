package response

import (
	"time"

	"probridge/internal/domain/entities"
)

type PayoutResponse struct {
	ID           string     `json:"id"`
	JobID        string     `json:"job_id"`
	ContractorID string     `json:"contractor_id"`
	AmountCents  int64      `json:"amount_cents"`
	Status       string     `json:"status"`
	Method       string     `json:"method,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:           p.ID,
		JobID:        p.JobID,
		ContractorID: p.ContractorID,
		AmountCents:  p.AmountCents,
		Status:       string(p.Status),
		Method:       p.Method,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		PaidAt:       p.PaidAt,
	}
}
