package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobInput = errors.New("invalid job input")
	ErrInvalidToken    = errors.New("invalid client token")
)

// CreateJobInput is the intake command. City and category resolution (slug
// lookup, validation against the directory) happens upstream; the
// orchestrator receives ids.
type CreateJobInput struct {
	ClientID          string
	CityID            string
	ServiceCategoryID string
	Title             string
	Description       string
	Zip               string
	PreferredTiming   string
	IsTest            bool
}

// JobStatusView is the client-facing point-in-time read: job state plus the
// latest quote and payment summaries.
type JobStatusView struct {
	Job           entities.Job
	QuoteTotal    int64
	QuoteStatus   entities.QuoteStatus
	PaymentStatus entities.PaymentStatus
	HasQuote      bool
	HasPayment    bool
}

// IIntakeUseCase creates jobs and serves the token-gated client views.

type IIntakeUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetStatus(ctx context.Context, jobID, token string) (JobStatusView, error)
	CancelByClient(ctx context.Context, jobID, token string) (entities.Job, error)
}

type IntakeUseCase struct {
	jobs      interfaces.IJobRepository
	events    interfaces.IJobEventRepository
	quotes    interfaces.IQuoteRepository
	payments  interfaces.IPaymentRepository
	matching  IMatchingUseCase
	lifecycle *LifecycleUseCase
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	jobs interfaces.IJobRepository,
	events interfaces.IJobEventRepository,
	quotes interfaces.IQuoteRepository,
	payments interfaces.IPaymentRepository,
	matching IMatchingUseCase,
	lifecycle *LifecycleUseCase,
) *IntakeUseCase {
	return &IntakeUseCase{jobs: jobs, events: events, quotes: quotes, payments: payments, matching: matching, lifecycle: lifecycle}
}

// CreateJob persists a new job and runs contractor matching synchronously.
// The returned job carries the post-matching status: offering_contractors
// when offers went out, no_contractor_found when nobody matched.
func (u *IntakeUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.CityID = strings.TrimSpace(in.CityID)
	in.ServiceCategoryID = strings.TrimSpace(in.ServiceCategoryID)
	in.Description = strings.TrimSpace(in.Description)
	if in.ClientID == "" || in.CityID == "" || in.ServiceCategoryID == "" || in.Description == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:                uuid.NewString(),
		ClientID:          in.ClientID,
		CityID:            in.CityID,
		ServiceCategoryID: in.ServiceCategoryID,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Zip:               strings.TrimSpace(in.Zip),
		PreferredTiming:   strings.TrimSpace(in.PreferredTiming),
		Status:            entities.JobStatusNew,
		CreatedAt:         now,
		UpdatedAt:         now,
		OriginChannel:     "web",
		IsTest:            in.IsTest,
		ClientViewToken:   uuid.NewString(),
	}

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	ev := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     created.ID,
		EventType: entities.EventJobCreated,
		ActorKind: entities.ActorClient,
		ActorID:   in.ClientID,
		CreatedAt: now,
	}
	if err := u.events.Append(ctx, ev); err != nil {
		log.Printf("[intake][usecase] created event append failed job_id=%s err=%v", created.ID, err)
	}
	log.Printf("[intake][usecase] job created job_id=%s city_id=%s category_id=%s is_test=%t", created.ID, in.CityID, in.ServiceCategoryID, in.IsTest)

	dispatched, err := u.matching.DispatchOffers(ctx, created.ID)
	if err != nil {
		// The job exists; matching can be re-driven by an operator. Surface
		// the created job rather than failing the intake.
		log.Printf("[intake][usecase] matching failed job_id=%s err=%v", created.ID, err)
		return created, nil
	}
	return dispatched, nil
}

func (u *IntakeUseCase) GetStatus(ctx context.Context, jobID, token string) (JobStatusView, error) {
	job, err := u.authorizeClient(ctx, jobID, token)
	if err != nil {
		return JobStatusView{}, err
	}

	view := JobStatusView{Job: job}
	quote, err := u.quotes.GetLatestByJobID(ctx, job.ID)
	if err != nil {
		return JobStatusView{}, err
	}
	if quote.ID != "" {
		view.HasQuote = true
		view.QuoteTotal = quote.TotalPriceCents
		view.QuoteStatus = quote.Status
	}
	payments, err := u.payments.ListByJobID(ctx, job.ID)
	if err != nil {
		return JobStatusView{}, err
	}
	if len(payments) > 0 {
		latest := payments[0]
		for _, p := range payments[1:] {
			if p.CreatedAt.After(latest.CreatedAt) {
				latest = p
			}
		}
		view.HasPayment = true
		view.PaymentStatus = latest.Status
	}
	return view, nil
}

func (u *IntakeUseCase) CancelByClient(ctx context.Context, jobID, token string) (entities.Job, error) {
	job, err := u.authorizeClient(ctx, jobID, token)
	if err != nil {
		return entities.Job{}, err
	}
	return u.lifecycle.ApplyTransition(ctx, job.ID, entities.JobStatusCancelledByClient,
		Actor{Kind: entities.ActorClient, ID: job.ClientID}, nil)
}

// authorizeClient loads the job and checks the opaque view token in constant
// time.
func (u *IntakeUseCase) authorizeClient(ctx context.Context, jobID, token string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !tokenMatches(token, job.ClientViewToken) {
		return entities.Job{}, ErrInvalidToken
	}
	return job, nil
}

// tokenMatches compares the caller-supplied token against the stored one in
// constant time.
func tokenMatches(provided, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(stored)) == 1
}
