package response

import (
	"time"

	"probridge/internal/domain/entities"
)

type LineItemResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	Label           string `json:"label"`
	Quantity        int64  `json:"quantity"`
	UnitPriceCents  int64  `json:"unit_price_cents"`
	TotalPriceCents int64  `json:"total_price_cents"`
}

type QuoteResponse struct {
	ID              string             `json:"id"`
	JobID           string             `json:"job_id"`
	Version         int64              `json:"version"`
	Status          string             `json:"status"`
	LineItems       []LineItemResponse `json:"line_items"`
	TotalPriceCents int64              `json:"total_price_cents"`
	CreatedAt       time.Time          `json:"created_at"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, LineItemResponse{
			ID:              li.ID,
			Kind:            string(li.Kind),
			Label:           li.Label,
			Quantity:        li.Quantity,
			UnitPriceCents:  li.UnitPriceCents,
			TotalPriceCents: li.TotalPriceCents,
		})
	}
	return QuoteResponse{
		ID:              q.ID,
		JobID:           q.JobID,
		Version:         q.Version,
		Status:          string(q.Status),
		LineItems:       items,
		TotalPriceCents: q.TotalPriceCents,
		CreatedAt:       q.CreatedAt,
		ApprovedAt:      q.ApprovedAt,
	}
}
