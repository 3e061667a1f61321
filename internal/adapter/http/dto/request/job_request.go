package request

import "strings"

// CreateJobRequest is the public intake payload. Intake is deliberately
// anonymous-friendly: the client id is whatever identity the web funnel
// resolved, and the response carries the view token used for every later
// client action.
type CreateJobRequest struct {
	ClientID          string `json:"client_id" binding:"required"`
	CityID            string `json:"city_id" binding:"required"`
	ServiceCategoryID string `json:"service_category_id" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	Zip               string `json:"zip"`
	PreferredTiming   string `json:"preferred_timing"`
	IsTest            bool   `json:"is_test"`
}

// ClientActionRequest authorizes a client-side action (approve, cancel)
// through the job's view token.
type ClientActionRequest struct {
	Token string `json:"token" binding:"required"`
}

func (r ClientActionRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}

// AcceptOfferRequest is sent by a contractor claiming an open offer.
type AcceptOfferRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
}

func (r AcceptOfferRequest) ResolveContractorID() string {
	return strings.TrimSpace(r.ContractorID)
}

// TransitionRequest is the operator's generic lifecycle command for the
// post-confirmation statuses (scheduled, in_progress, completed, cancelled).
type TransitionRequest struct {
	Target  string `json:"target" binding:"required"`
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

func (r TransitionRequest) ResolveTarget() string {
	return strings.TrimSpace(strings.ToLower(r.Target))
}
