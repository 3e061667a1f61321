package entities

import "time"

// ContractorStatus gates matching eligibility.

type ContractorStatus string

const (
	ContractorStatusActive        ContractorStatus = "active"
	ContractorStatusPendingReview ContractorStatus = "pending_review"
	ContractorStatusSuspended     ContractorStatus = "suspended"
)

// ContractorProfile is the matchable contractor record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (city_id-index): city_id
//
// Running totals move only when a payout is marked paid, via an atomic ADD,
// so they stay traceable to payout state rather than job state.

type ContractorProfile struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"user_id"`
	CityID             string           `json:"city_id"`
	BaseZip            string           `json:"base_zip"`
	ServiceCategoryIDs []string         `json:"service_category_ids"`
	Status             ContractorStatus `json:"status"`
	PublicName         string           `json:"public_name"`
	CompletedJobsCount int64            `json:"completed_jobs_count"`
	TotalEarningsCents int64            `json:"total_earnings_cents"`
	CreatedAt          time.Time        `json:"created_at"`
}

// MatchesService reports whether the contractor offers a service category.
func (c ContractorProfile) MatchesService(categoryID string) bool {
	for _, s := range c.ServiceCategoryIDs {
		if s == categoryID {
			return true
		}
	}
	return false
}
