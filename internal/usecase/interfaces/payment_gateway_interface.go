package interfaces

import (
	"context"

	"probridge/internal/domain/entities"
)

// CheckoutSession is the gateway's handle for one payment attempt. The
// external id is what confirmation events carry back.
type CheckoutSession struct {
	ExternalID  string
	CheckoutURL string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The orchestrator only needs session creation; confirmation arrives later
// as webhook events (external id + outcome), at-least-once, possibly
// duplicated, possibly out of order relative to session creation.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, job entities.Job, quote entities.Quote) (CheckoutSession, error)
}
