package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"probridge/internal/config"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidExternalID     = errors.New("invalid external payment id")
	ErrInvalidOutcome        = errors.New("invalid payment outcome")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrNoApprovedQuote       = errors.New("no approved quote for checkout")
	ErrJobNotAwaitingPayment = errors.New("job cannot start checkout")
)

// Confirmation outcomes delivered by the gateway.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// PaymentConfirmation is one gateway delivery: at-least-once, possibly
// duplicated, possibly out of order relative to session creation. Job and
// quote references are only present when the gateway echoes them back.
type PaymentConfirmation struct {
	ExternalID    string
	Outcome       string
	JobID         string
	QuoteID       string
	AmountCents   int64
	Currency      string
	FailureReason string
}

// StartCheckoutResult is the approve-quote follow-up: either a checkout URL
// the client pays through, or a direct confirmation when the platform does
// not require payment up front.
type StartCheckoutResult struct {
	Job         entities.Job
	Payment     entities.Payment
	CheckoutURL string
	Confirmed   bool
}

// IPaymentUseCase creates checkout sessions and reconciles gateway
// confirmation events idempotently.

type IPaymentUseCase interface {
	StartCheckout(ctx context.Context, jobID string, actor Actor) (StartCheckoutResult, error)
	HandleConfirmation(ctx context.Context, ev PaymentConfirmation) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	payments  interfaces.IPaymentRepository
	quotes    interfaces.IQuoteRepository
	jobs      interfaces.IJobRepository
	events    interfaces.IJobEventRepository
	gateway   interfaces.IPaymentGateway
	lifecycle *LifecycleUseCase
	cfg       config.Config
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	quotes interfaces.IQuoteRepository,
	jobs interfaces.IJobRepository,
	events interfaces.IJobEventRepository,
	gateway interfaces.IPaymentGateway,
	lifecycle *LifecycleUseCase,
	cfg config.Config,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, quotes: quotes, jobs: jobs, events: events, gateway: gateway, lifecycle: lifecycle, cfg: cfg}
}

// StartCheckout follows an approved quote. With payment-before-confirm
// enabled it creates a gateway session, records a pending payment and moves
// the job to awaiting_payment; otherwise it confirms the job directly. A
// gateway failure leaves the job state untouched, so the command is safely
// retryable.
func (u *PaymentUseCase) StartCheckout(ctx context.Context, jobID string, actor Actor) (StartCheckoutResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return StartCheckoutResult{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return StartCheckoutResult{}, err
	}
	if job.ID == "" {
		return StartCheckoutResult{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusQuoteSent {
		return StartCheckoutResult{}, ErrJobNotAwaitingPayment
	}

	quote, err := u.quotes.GetLatestByJobID(ctx, jobID)
	if err != nil {
		return StartCheckoutResult{}, err
	}
	if quote.ID == "" || quote.Status != entities.QuoteStatusApproved {
		return StartCheckoutResult{}, ErrNoApprovedQuote
	}

	if !u.cfg.RequirePaymentBeforeConfirm {
		confirmed, err := u.lifecycle.ApplyTransition(ctx, jobID, entities.JobStatusConfirmed, actor,
			map[string]any{"quote_id": quote.ID, "payment_required": false})
		if err != nil {
			return StartCheckoutResult{}, err
		}
		return StartCheckoutResult{Job: confirmed, Confirmed: true}, nil
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, job, quote)
	if err != nil {
		log.Printf("[payment][usecase] checkout session failed job_id=%s quote_id=%s err=%v", jobID, quote.ID, err)
		return StartCheckoutResult{}, err
	}

	payment := entities.Payment{
		ID:          uuid.NewString(),
		JobID:       jobID,
		QuoteID:     quote.ID,
		ExternalID:  session.ExternalID,
		Status:      entities.PaymentStatusPending,
		AmountCents: quote.TotalPriceCents,
		Currency:    "usd",
		CheckoutURL: session.CheckoutURL,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		return StartCheckoutResult{}, err
	}

	updated, err := u.lifecycle.ApplyTransition(ctx, jobID, entities.JobStatusAwaitingPayment, actor,
		map[string]any{"quote_id": quote.ID, "payment_id": created.ID})
	if err != nil {
		return StartCheckoutResult{}, err
	}
	log.Printf("[payment][usecase] checkout started job_id=%s payment_id=%s external_id=%s amount_cents=%d",
		jobID, created.ID, created.ExternalID, created.AmountCents)
	return StartCheckoutResult{Job: updated, Payment: created, CheckoutURL: session.CheckoutURL}, nil
}

// HandleConfirmation reconciles one gateway delivery.
//
// Idempotency contract: a success for an external id whose payment is
// already succeeded changes nothing and reports success. The first success
// marks the payment, then drives the job to confirmed; losing that
// transition race to a duplicate delivery is swallowed as already-satisfied.
func (u *PaymentUseCase) HandleConfirmation(ctx context.Context, ev PaymentConfirmation) (entities.Payment, error) {
	ev.ExternalID = strings.TrimSpace(ev.ExternalID)
	if ev.ExternalID == "" {
		return entities.Payment{}, ErrInvalidExternalID
	}
	if ev.Outcome != OutcomeSucceeded && ev.Outcome != OutcomeFailed {
		return entities.Payment{}, ErrInvalidOutcome
	}

	payment, err := u.payments.GetByExternalID(ctx, ev.ExternalID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		// Sessions can be created out of band (gateway dashboard, retries
		// across deploys). When the delivery carries the job reference we
		// record the payment fresh; otherwise there is nothing to reconcile.
		if ev.JobID == "" {
			return entities.Payment{}, ErrPaymentNotFound
		}
		payment, err = u.payments.Create(ctx, entities.Payment{
			ID:          uuid.NewString(),
			JobID:       ev.JobID,
			QuoteID:     ev.QuoteID,
			ExternalID:  ev.ExternalID,
			Status:      entities.PaymentStatusPending,
			AmountCents: ev.AmountCents,
			Currency:    ev.Currency,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return entities.Payment{}, err
		}
	}

	if ev.Outcome == OutcomeFailed {
		if payment.Status == entities.PaymentStatusSucceeded {
			// Out-of-order failure after success; success wins.
			log.Printf("[payment][usecase] stale failure ignored external_id=%s payment_id=%s", ev.ExternalID, payment.ID)
			return payment, nil
		}
		failed, err := u.payments.MarkFailed(ctx, payment.ID, ev.FailureReason)
		if err != nil {
			return entities.Payment{}, err
		}
		u.appendEvent(ctx, failed.JobID, entities.EventPaymentFailed,
			map[string]any{"payment_id": failed.ID, "external_id": ev.ExternalID, "reason": ev.FailureReason})
		log.Printf("[payment][usecase] payment failed job_id=%s payment_id=%s reason=%q", failed.JobID, failed.ID, ev.FailureReason)
		return failed, nil
	}

	if payment.Status == entities.PaymentStatusSucceeded {
		log.Printf("[payment][usecase] duplicate success ignored external_id=%s payment_id=%s", ev.ExternalID, payment.ID)
		u.appendEvent(ctx, payment.JobID, entities.EventPaymentDuplicateIgnored,
			map[string]any{"payment_id": payment.ID, "external_id": ev.ExternalID})
		return payment, nil
	}

	succeeded, err := u.payments.MarkSucceeded(ctx, payment.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// A concurrent delivery won; same terminal state, same answer.
			log.Printf("[payment][usecase] duplicate success raced external_id=%s payment_id=%s", ev.ExternalID, payment.ID)
			u.appendEvent(ctx, payment.JobID, entities.EventPaymentDuplicateIgnored,
				map[string]any{"payment_id": payment.ID, "external_id": ev.ExternalID})
			return u.payments.GetByID(ctx, payment.ID)
		}
		return entities.Payment{}, err
	}

	u.appendEvent(ctx, succeeded.JobID, entities.EventPaymentSucceeded,
		map[string]any{"payment_id": succeeded.ID, "external_id": ev.ExternalID, "amount_cents": succeeded.AmountCents})
	log.Printf("[payment][usecase] payment succeeded job_id=%s payment_id=%s", succeeded.JobID, succeeded.ID)

	if _, err := u.lifecycle.ApplyTransition(ctx, succeeded.JobID, entities.JobStatusConfirmed, SystemActor,
		map[string]any{"payment_id": succeeded.ID}); err != nil {
		// Already confirmed by another delivery, or moved further along.
		// The payment record is the durable fact; the transition failure is
		// already-satisfied, not an error to surface.
		log.Printf("[payment][usecase] confirm transition skipped job_id=%s err=%v", succeeded.JobID, err)
	}
	return succeeded, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.payments.ListByJobID(ctx, jobID)
}

func (u *PaymentUseCase) appendEvent(ctx context.Context, jobID, eventType string, data map[string]any) {
	ev := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     jobID,
		EventType: eventType,
		ActorKind: entities.ActorSystem,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.events.Append(ctx, ev); err != nil {
		log.Printf("[payment][usecase] event append failed job_id=%s event_type=%s err=%v", jobID, eventType, err)
	}
}
