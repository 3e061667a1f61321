package interfaces

import (
	"context"
	"time"

	"probridge/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The reconciler resolves gateway confirmations by external id; marking a
// payment succeeded is conditional on it not already being succeeded, which
// is what makes at-least-once webhook delivery safe.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)

	// MarkSucceeded flips the payment to succeeded and stamps paid_at, but
	// only if it is not already succeeded. Returns ErrConditionFailed on a
	// replayed success.
	MarkSucceeded(ctx context.Context, id string, paidAt time.Time) (entities.Payment, error)

	// MarkFailed records a failed outcome. The job is left untouched so the
	// client can retry payment.
	MarkFailed(ctx context.Context, id, reason string) (entities.Payment, error)
}
