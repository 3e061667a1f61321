package interfaces

import (
	"context"
	"time"

	"probridge/internal/domain/entities"
)

// IPayoutRepository abstracts DynamoDB persistence for Payout.
//
// Payouts are keyed by job id, so Create carries the exactly-once guarantee
// for a completed job: a retried completion hits the existence condition and
// gets ErrConditionFailed.

type IPayoutRepository interface {
	Create(ctx context.Context, p entities.Payout) (entities.Payout, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Payout, error)

	// MarkPaid flips the payout from pending to paid and stamps paid_at.
	// Returns ErrConditionFailed when the payout is missing or not pending,
	// which makes a duplicated mark-paid command settle nothing twice.
	MarkPaid(ctx context.Context, jobID string, paidAt time.Time) (entities.Payout, error)
}
