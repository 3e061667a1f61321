package request

import (
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
)

type LineItemRequest struct {
	Kind           string `json:"kind" binding:"required"`
	Label          string `json:"label" binding:"required"`
	Quantity       int64  `json:"quantity" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required"`
}

// QuoteDraftRequest carries the operator's line items for a new quote
// version. Totals are never accepted from the wire; the ledger computes them.
type QuoteDraftRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
	ActorID   string            `json:"actor_id"`
}

func (r QuoteDraftRequest) ToInputs() []usecase.LineItemInput {
	items := make([]usecase.LineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, usecase.LineItemInput{
			Kind:           entities.LineItemKind(li.Kind),
			Label:          li.Label,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
	}
	return items
}
