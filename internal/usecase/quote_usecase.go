package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyLineItems   = errors.New("quote requires at least one line item")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrQuoteNotEditable = errors.New("job is not accepting quote drafts")
	ErrQuoteApproved    = errors.New("approved quote cannot be replaced")
	ErrNoQuoteToSend    = errors.New("no draft quote to send")
	ErrNoQuoteToApprove = errors.New("no sent quote to approve")
)

// LineItemInput is one priced component of a draft. Explicit tagged fields
// rather than a metadata blob, so the total invariant stays checkable.
type LineItemInput struct {
	Kind           entities.LineItemKind
	Label          string
	Quantity       int64
	UnitPriceCents int64
}

// ApprovalResult is what the approve command hands back to its caller, which
// composes it with either an immediate confirmation or a checkout session.
type ApprovalResult struct {
	Job   entities.Job
	Quote entities.Quote

	// NoActionNeeded is set when the quote is already approved: a stale
	// re-approve is not an error, nothing changed.
	NoActionNeeded bool
}

// IQuoteUseCase is the quote ledger: draft/sent/approved versions and their
// line items. Quote.total is always recomputed from the items, never
// mutated independently.

type IQuoteUseCase interface {
	CreateOrReplaceDraft(ctx context.Context, jobID string, items []LineItemInput, actor Actor) (entities.Quote, error)
	Send(ctx context.Context, jobID string, actor Actor) (entities.Quote, error)
	Approve(ctx context.Context, jobID, clientToken string) (ApprovalResult, error)
	GetLatestByJobID(ctx context.Context, jobID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	jobs      interfaces.IJobRepository
	quotes    interfaces.IQuoteRepository
	events    interfaces.IJobEventRepository
	lifecycle *LifecycleUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(jobs interfaces.IJobRepository, quotes interfaces.IQuoteRepository, events interfaces.IJobEventRepository, lifecycle *LifecycleUseCase) *QuoteUseCase {
	return &QuoteUseCase{jobs: jobs, quotes: quotes, events: events, lifecycle: lifecycle}
}

// CreateOrReplaceDraft opens a new quote version for a job that is awaiting
// a quote (or re-quoting before approval). Any prior draft or sent version
// is expired; an approved version is immutable and blocks re-quoting.
func (u *QuoteUseCase) CreateOrReplaceDraft(ctx context.Context, jobID string, items []LineItemInput, actor Actor) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}
	lineItems, err := buildLineItems(items)
	if err != nil {
		return entities.Quote{}, err
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if job.ID == "" {
		return entities.Quote{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusAwaitingQuote && job.Status != entities.JobStatusQuoteSent {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	prior, err := u.quotes.GetLatestByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	version := int64(1)
	if prior.ID != "" {
		if prior.Status == entities.QuoteStatusApproved {
			return entities.Quote{}, ErrQuoteApproved
		}
		version = prior.Version + 1
		if prior.Status == entities.QuoteStatusDraft || prior.Status == entities.QuoteStatusSentToClient {
			if _, err := u.quotes.UpdateStatus(ctx, prior.ID, prior.Status, entities.QuoteStatusExpired, nil); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
				return entities.Quote{}, err
			}
		}
	}

	quote := entities.Quote{
		ID:              uuid.NewString(),
		JobID:           jobID,
		Version:         version,
		Status:          entities.QuoteStatusDraft,
		LineItems:       lineItems,
		TotalPriceCents: entities.ComputeTotalCents(lineItems),
		CreatedAt:       time.Now().UTC(),
	}
	created, err := u.quotes.Create(ctx, quote)
	if err != nil {
		return entities.Quote{}, err
	}

	u.appendEvent(ctx, jobID, entities.EventQuoteCreated, actor,
		map[string]any{"quote_id": created.ID, "version": created.Version, "total_cents": created.TotalPriceCents})
	log.Printf("[quote][usecase] draft created job_id=%s quote_id=%s version=%d total_cents=%d", jobID, created.ID, created.Version, created.TotalPriceCents)
	return created, nil
}

// Send flips the current draft to sent_to_client and moves the job into
// quote_sent. Re-sending after a re-quote leaves the job status untouched
// (it is already quote_sent); the superseded version was expired when the
// new draft was opened.
func (u *QuoteUseCase) Send(ctx context.Context, jobID string, actor Actor) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if job.ID == "" {
		return entities.Quote{}, ErrJobNotFound
	}

	quote, err := u.quotes.GetLatestByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" || quote.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrNoQuoteToSend
	}

	sent, err := u.quotes.UpdateStatus(ctx, quote.ID, entities.QuoteStatusDraft, entities.QuoteStatusSentToClient, nil)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quote{}, ErrNoQuoteToSend
		}
		return entities.Quote{}, err
	}

	if job.Status == entities.JobStatusAwaitingQuote {
		if _, err := u.lifecycle.ApplyTransition(ctx, jobID, entities.JobStatusQuoteSent, actor,
			map[string]any{"quote_id": sent.ID}); err != nil {
			return entities.Quote{}, err
		}
	}

	u.appendEvent(ctx, jobID, entities.EventQuoteSent, actor, map[string]any{"quote_id": sent.ID})
	log.Printf("[quote][usecase] quote sent job_id=%s quote_id=%s version=%d", jobID, sent.ID, sent.Version)
	return sent, nil
}

// Approve validates the client token and flips the sent quote to approved.
// It does not move the job: the caller composes the follow-up (checkout
// session or direct confirmation) through the payment use case.
func (u *QuoteUseCase) Approve(ctx context.Context, jobID, clientToken string) (ApprovalResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ApprovalResult{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if job.ID == "" {
		return ApprovalResult{}, ErrJobNotFound
	}
	if !tokenMatches(clientToken, job.ClientViewToken) {
		return ApprovalResult{}, ErrInvalidToken
	}

	quote, err := u.quotes.GetLatestByJobID(ctx, jobID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if quote.ID == "" {
		return ApprovalResult{}, ErrNoQuoteToApprove
	}
	if quote.Status == entities.QuoteStatusApproved {
		return ApprovalResult{Job: job, Quote: quote, NoActionNeeded: true}, nil
	}
	if quote.Status != entities.QuoteStatusSentToClient || job.Status != entities.JobStatusQuoteSent {
		return ApprovalResult{}, ErrNoQuoteToApprove
	}

	now := time.Now().UTC()
	approved, err := u.quotes.UpdateStatus(ctx, quote.ID, entities.QuoteStatusSentToClient, entities.QuoteStatusApproved, &now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// Raced with another approval or a supersede; re-read and decide.
			current, rerr := u.quotes.GetByID(ctx, quote.ID)
			if rerr != nil {
				return ApprovalResult{}, rerr
			}
			if current.Status == entities.QuoteStatusApproved {
				return ApprovalResult{Job: job, Quote: current, NoActionNeeded: true}, nil
			}
			return ApprovalResult{}, ErrNoQuoteToApprove
		}
		return ApprovalResult{}, err
	}

	log.Printf("[quote][usecase] quote approved job_id=%s quote_id=%s total_cents=%d", jobID, approved.ID, approved.TotalPriceCents)
	return ApprovalResult{Job: job, Quote: approved}, nil
}

func (u *QuoteUseCase) GetLatestByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}
	return u.quotes.GetLatestByJobID(ctx, jobID)
}

func (u *QuoteUseCase) appendEvent(ctx context.Context, jobID, eventType string, actor Actor, data map[string]any) {
	ev := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     jobID,
		EventType: eventType,
		ActorKind: actor.Kind,
		ActorID:   actor.ID,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.events.Append(ctx, ev); err != nil {
		log.Printf("[quote][usecase] event append failed job_id=%s event_type=%s err=%v", jobID, eventType, err)
	}
}

func buildLineItems(items []LineItemInput) ([]entities.QuoteLineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyLineItems
	}
	out := make([]entities.QuoteLineItem, 0, len(items))
	for _, in := range items {
		switch in.Kind {
		case entities.LineItemBase, entities.LineItemUpsell, entities.LineItemDiscount, entities.LineItemFee:
		default:
			return nil, ErrInvalidLineItem
		}
		label := strings.TrimSpace(in.Label)
		if label == "" || in.Quantity <= 0 || in.UnitPriceCents <= 0 {
			return nil, ErrInvalidLineItem
		}
		out = append(out, entities.QuoteLineItem{
			ID:              uuid.NewString(),
			Kind:            in.Kind,
			Label:           label,
			Quantity:        in.Quantity,
			UnitPriceCents:  in.UnitPriceCents,
			TotalPriceCents: in.Quantity * in.UnitPriceCents,
		})
	}
	return out, nil
}
