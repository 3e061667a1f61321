package request

import (
	"errors"
	"strings"

	"probridge/internal/usecase"
)

var ErrUnknownPaymentOutcome = errors.New("unknown payment outcome")

// PaymentWebhookRequest is the provider-agnostic confirmation payload posted
// by the payment gateway (or its webhook relay). Beyond external_id and
// status every field is optional; job_id and quote_id let the reconciler
// recover when the confirmation arrives before the session record did.
type PaymentWebhookRequest struct {
	ExternalID    string `json:"external_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
	JobID         string `json:"job_id"`
	QuoteID       string `json:"quote_id"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	FailureReason string `json:"failure_reason"`
}

// ResolveOutcome normalizes provider status vocabularies onto the two
// outcomes the reconciler understands. Mercado Pago says approved/rejected;
// our mock and tests say succeeded/failed.
func (r PaymentWebhookRequest) ResolveOutcome() (string, error) {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "approved", "accredited", "succeeded", "success", "paid":
		return usecase.OutcomeSucceeded, nil
	case "rejected", "cancelled", "failed", "failure", "expired":
		return usecase.OutcomeFailed, nil
	default:
		return "", ErrUnknownPaymentOutcome
	}
}

func (r PaymentWebhookRequest) ToConfirmation() (usecase.PaymentConfirmation, error) {
	outcome, err := r.ResolveOutcome()
	if err != nil {
		return usecase.PaymentConfirmation{}, err
	}
	return usecase.PaymentConfirmation{
		ExternalID:    strings.TrimSpace(r.ExternalID),
		Outcome:       outcome,
		JobID:         strings.TrimSpace(r.JobID),
		QuoteID:       strings.TrimSpace(r.QuoteID),
		AmountCents:   r.AmountCents,
		Currency:      r.Currency,
		FailureReason: r.FailureReason,
	}, nil
}
