package interfaces

import (
	"context"
	"time"

	"probridge/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quote status flips are conditional on the current status so that a stale
// command (approve after supersede, double send) fails at the store instead
// of clobbering a newer version.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetLatestByJobID(ctx context.Context, jobID string) (entities.Quote, error)

	// UpdateStatus flips a quote's status from expected to target, stamping
	// approvedAt when provided. Returns ErrConditionFailed when the quote is
	// missing or no longer in the expected status.
	UpdateStatus(ctx context.Context, id string, expected, target entities.QuoteStatus, approvedAt *time.Time) (entities.Quote, error)
}
