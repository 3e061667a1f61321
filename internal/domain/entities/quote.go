package entities

import "time"

// QuoteStatus represents the lifecycle of one quote version.
//
// Domain notes:
//   - At most one quote per job is sent_to_client or approved at a time.
//   - Sending a new version expires any previously sent one.

type QuoteStatus string

const (
	QuoteStatusDraft        QuoteStatus = "draft"
	QuoteStatusSentToClient QuoteStatus = "sent_to_client"
	QuoteStatusApproved     QuoteStatus = "approved"
	QuoteStatusRejected     QuoteStatus = "rejected"
	QuoteStatusExpired      QuoteStatus = "expired"
)

// LineItemKind tags one priced component of a quote.

type LineItemKind string

const (
	LineItemBase     LineItemKind = "base"
	LineItemUpsell   LineItemKind = "upsell"
	LineItemDiscount LineItemKind = "discount"
	LineItemFee      LineItemKind = "fee"
)

// QuoteLineItem is one priced component of a quote version.
//
// Invariant: TotalPriceCents = Quantity * UnitPriceCents, recomputed on every
// draft mutation and never stored independently of its inputs.

type QuoteLineItem struct {
	ID              string       `json:"id"`
	Kind            LineItemKind `json:"kind"`
	Label           string       `json:"label"`
	Quantity        int64        `json:"quantity"`
	UnitPriceCents  int64        `json:"unit_price_cents"`
	TotalPriceCents int64        `json:"total_price_cents"`
}

// Quote is a versioned, priced proposal for a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Line items are embedded in the quote item; a quote version's items never
// change after it leaves draft.

type Quote struct {
	ID              string          `json:"id"`
	JobID           string          `json:"job_id"`
	Version         int64           `json:"version"`
	Status          QuoteStatus     `json:"status"`
	LineItems       []QuoteLineItem `json:"line_items"`
	TotalPriceCents int64           `json:"total_price_cents"`
	CreatedAt       time.Time       `json:"created_at"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
}

// ComputeTotalCents sums quantity * unit price over a line-item set.
func ComputeTotalCents(items []QuoteLineItem) int64 {
	var total int64
	for _, li := range items {
		total += li.Quantity * li.UnitPriceCents
	}
	return total
}
