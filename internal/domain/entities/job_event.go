package entities

import "time"

// ActorKind identifies who triggered a command. The orchestrator records the
// actor it is handed; it never authenticates.

type ActorKind string

const (
	ActorSystem     ActorKind = "system"
	ActorClient     ActorKind = "client"
	ActorContractor ActorKind = "contractor"
	ActorOperator   ActorKind = "operator"
)

// Event types written by the orchestrator. One status_<target> event per
// accepted transition, plus side-effect events.
const (
	EventJobCreated               = "job_created"
	EventOfferPrepared            = "offer_prepared"
	EventContractorOffersPrepared = "contractor_offers_prepared"
	EventNoContractorFound        = "no_contractor_found"
	EventOfferAccepted            = "offer_accepted"
	EventQuoteCreated             = "quote_created"
	EventQuoteSent                = "quote_sent"
	EventPaymentSucceeded         = "payment_succeeded"
	EventPaymentFailed            = "payment_failed"
	EventPaymentDuplicateIgnored  = "payment_duplicate_ignored"
	EventPayoutCreated            = "payout_created"
	EventPayoutPaid               = "payout_paid"
)

// StatusEventType returns the event type written for an accepted transition.
func StatusEventType(target JobStatus) string {
	return "status_" + string(target)
}

// JobEvent is one append-only audit record. Events reference but do not own
// the job; a job's full history is reconstructable from its events.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id

type JobEvent struct {
	ID        string         `json:"id"`
	JobID     string         `json:"job_id"`
	EventType string         `json:"event_type"`
	ActorKind ActorKind      `json:"actor_kind"`
	ActorID   string         `json:"actor_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
