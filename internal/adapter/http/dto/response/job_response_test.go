package response

import (
	"testing"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
)

func TestFromCreatedJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:                "job-1",
		ClientID:          "client-1",
		CityID:            "abq",
		ServiceCategoryID: "handyman",
		Title:             "Fix the gate",
		Status:            entities.JobStatusOfferingContractors,
		CreatedAt:         now,
		UpdatedAt:         now,
		ClientViewToken:   "tok-1",
	}

	res := FromCreatedJob(j)
	if res.ID != "job-1" || res.Status != "offering_contractors" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ClientViewToken != "tok-1" {
		t.Fatalf("expected the view token, got %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromStatusView(t *testing.T) {
	view := usecase.JobStatusView{
		Job:           entities.Job{ID: "job-1", Status: entities.JobStatusAwaitingPayment},
		HasQuote:      true,
		QuoteTotal:    12000,
		QuoteStatus:   entities.QuoteStatusApproved,
		HasPayment:    true,
		PaymentStatus: entities.PaymentStatusPending,
	}

	res := FromStatusView(view)
	if res.QuoteTotal == nil || *res.QuoteTotal != 12000 {
		t.Fatalf("unexpected quote total: %+v", res)
	}
	if res.QuoteStatus != "approved" || res.PaymentStatus != "pending" {
		t.Fatalf("unexpected summaries: %+v", res)
	}

	empty := FromStatusView(usecase.JobStatusView{Job: entities.Job{ID: "job-1", Status: entities.JobStatusNew}})
	if empty.QuoteTotal != nil || empty.QuoteStatus != "" || empty.PaymentStatus != "" {
		t.Fatalf("expected empty summaries, got %+v", empty)
	}
}
