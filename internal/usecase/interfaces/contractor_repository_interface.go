package interfaces

import (
	"context"

	"probridge/internal/domain/entities"
)

// IContractorRepository abstracts the contractor directory.
//
// The matcher only reads: active profiles in a city offering a category.
// The single write path mutates running totals with an atomic ADD when a
// payout settles.

type IContractorRepository interface {
	GetByID(ctx context.Context, id string) (entities.ContractorProfile, error)

	// ListActiveByCityAndService returns active contractors in the city
	// offering the service category, capped at limit, most recent first.
	ListActiveByCityAndService(ctx context.Context, cityID, serviceCategoryID string, limit int) ([]entities.ContractorProfile, error)

	// AddSettledEarnings atomically increments total_earnings_cents by
	// amountCents and completed_jobs_count by one.
	AddSettledEarnings(ctx context.Context, contractorID string, amountCents int64) error
}
