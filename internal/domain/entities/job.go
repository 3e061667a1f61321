package entities

import "time"

// JobStatus represents the lifecycle state of a service job.
//
// Domain notes:
//   - The platform is the source of truth for job state.
//   - Status only ever changes through the transition table below, applied
//     as a conditional write (expected current status) at the store layer.

type JobStatus string

const (
	JobStatusNew                 JobStatus = "new"
	JobStatusOfferingContractors JobStatus = "offering_contractors"
	JobStatusAwaitingQuote       JobStatus = "awaiting_quote"
	JobStatusQuoteSent           JobStatus = "quote_sent"
	JobStatusAwaitingPayment     JobStatus = "awaiting_payment"
	JobStatusConfirmed           JobStatus = "confirmed"
	JobStatusInProgress          JobStatus = "in_progress"
	JobStatusCompleted           JobStatus = "completed"
	JobStatusCancelledByClient   JobStatus = "cancelled_by_client"
	JobStatusCancelledInternal   JobStatus = "cancelled_internal"
	JobStatusNoContractorFound   JobStatus = "no_contractor_found"
)

// allowedTransitions is the legal transition table. Terminal statuses have
// no entry. Keep in sync with the API documentation.
var allowedTransitions = map[JobStatus][]JobStatus{
	JobStatusNew: {
		JobStatusOfferingContractors,
		JobStatusNoContractorFound,
		JobStatusCancelledInternal,
	},
	JobStatusOfferingContractors: {
		JobStatusAwaitingQuote,
		JobStatusNoContractorFound,
		JobStatusCancelledByClient,
		JobStatusCancelledInternal,
	},
	JobStatusAwaitingQuote: {
		JobStatusQuoteSent,
		JobStatusCancelledByClient,
		JobStatusCancelledInternal,
	},
	JobStatusQuoteSent: {
		JobStatusAwaitingPayment,
		JobStatusConfirmed,
		JobStatusCancelledByClient,
		JobStatusCancelledInternal,
	},
	JobStatusAwaitingPayment: {
		JobStatusConfirmed,
		JobStatusCancelledByClient,
		JobStatusCancelledInternal,
	},
	JobStatusConfirmed: {
		JobStatusInProgress,
		JobStatusCompleted,
		JobStatusCancelledByClient,
		JobStatusCancelledInternal,
	},
	JobStatusInProgress: {
		JobStatusCompleted,
		JobStatusCancelledInternal,
	},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to JobStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal targets from a status. The returned slice
// must not be mutated.
func AllowedTargets(from JobStatus) []JobStatus {
	return allowedTransitions[from]
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s JobStatus) bool {
	return len(allowedTransitions[s]) == 0
}

// Job is one client service request tracked through its lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Concurrency:
//   - Job is the only shared mutable record. Every status mutation goes
//     through IJobRepository conditional updates; there is no blind write.

type Job struct {
	ID                   string     `json:"id"`
	ClientID             string     `json:"client_id"`
	CityID               string     `json:"city_id"`
	ServiceCategoryID    string     `json:"service_category_id"`
	Title                string     `json:"title,omitempty"`
	Description          string     `json:"description"`
	Zip                  string     `json:"zip"`
	PreferredTiming      string     `json:"preferred_timing"`
	Status               JobStatus  `json:"status"`
	AssignedContractorID string     `json:"assigned_contractor_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	OriginChannel        string     `json:"origin_channel"`
	IsTest               bool       `json:"is_test"`
	ClientViewToken      string     `json:"client_view_token"`
}
