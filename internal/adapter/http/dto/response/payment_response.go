package response

import (
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
)

type PaymentResponse struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	QuoteID       string     `json:"quote_id,omitempty"`
	ExternalID    string     `json:"external_id"`
	Status        string     `json:"status"`
	AmountCents   int64      `json:"amount_cents"`
	Currency      string     `json:"currency"`
	FailureReason string     `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		JobID:         p.JobID,
		QuoteID:       p.QuoteID,
		ExternalID:    p.ExternalID,
		Status:        string(p.Status),
		AmountCents:   p.AmountCents,
		Currency:      p.Currency,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
		PaidAt:        p.PaidAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// CheckoutResponse follows a quote approval. Confirmed means the platform
// skipped payment and the job went straight to confirmed; otherwise the
// client is redirected to CheckoutURL.
type CheckoutResponse struct {
	Job         JobResponse `json:"job"`
	Confirmed   bool        `json:"confirmed"`
	CheckoutURL string      `json:"checkout_url,omitempty"`
	ExternalID  string      `json:"external_id,omitempty"`
}

func FromCheckout(res usecase.StartCheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Job:         FromJob(res.Job),
		Confirmed:   res.Confirmed,
		CheckoutURL: res.CheckoutURL,
		ExternalID:  res.Payment.ExternalID,
	}
}
