package response

import (
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
)

type JobResponse struct {
	ID                   string     `json:"id"`
	ClientID             string     `json:"client_id"`
	CityID               string     `json:"city_id"`
	ServiceCategoryID    string     `json:"service_category_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Zip                  string     `json:"zip,omitempty"`
	PreferredTiming      string     `json:"preferred_timing,omitempty"`
	Status               string     `json:"status"`
	AssignedContractorID string     `json:"assigned_contractor_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                   j.ID,
		ClientID:             j.ClientID,
		CityID:               j.CityID,
		ServiceCategoryID:    j.ServiceCategoryID,
		Title:                j.Title,
		Description:          j.Description,
		Zip:                  j.Zip,
		PreferredTiming:      j.PreferredTiming,
		Status:               string(j.Status),
		AssignedContractorID: j.AssignedContractorID,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
		AcceptedAt:           j.AcceptedAt,
		CompletedAt:          j.CompletedAt,
		CancelledAt:          j.CancelledAt,
	}
}

// CreatedJobResponse is only returned from intake. It is the single place
// the view token crosses the wire; every other job read omits it.
type CreatedJobResponse struct {
	JobResponse
	ClientViewToken string `json:"client_view_token"`
}

func FromCreatedJob(j entities.Job) CreatedJobResponse {
	return CreatedJobResponse{JobResponse: FromJob(j), ClientViewToken: j.ClientViewToken}
}

// JobStatusResponse is the token-gated client view: the job plus collapsed
// quote and payment summaries.
type JobStatusResponse struct {
	Job           JobResponse `json:"job"`
	QuoteTotal    *int64      `json:"quote_total_cents,omitempty"`
	QuoteStatus   string      `json:"quote_status,omitempty"`
	PaymentStatus string      `json:"payment_status,omitempty"`
}

func FromStatusView(v usecase.JobStatusView) JobStatusResponse {
	resp := JobStatusResponse{Job: FromJob(v.Job)}
	if v.HasQuote {
		total := v.QuoteTotal
		resp.QuoteTotal = &total
		resp.QuoteStatus = string(v.QuoteStatus)
	}
	if v.HasPayment {
		resp.PaymentStatus = string(v.PaymentStatus)
	}
	return resp
}

type JobEventResponse struct {
	ID        string         `json:"id"`
	JobID     string         `json:"job_id"`
	EventType string         `json:"event_type"`
	ActorKind string         `json:"actor_kind"`
	ActorID   string         `json:"actor_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromJobEvents(events []entities.JobEvent) []JobEventResponse {
	out := make([]JobEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, JobEventResponse{
			ID:        ev.ID,
			JobID:     ev.JobID,
			EventType: ev.EventType,
			ActorKind: string(ev.ActorKind),
			ActorID:   ev.ActorID,
			Data:      ev.Data,
			CreatedAt: ev.CreatedAt,
		})
	}
	return out
}
