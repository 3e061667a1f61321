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
	ErrPayoutNotFound   = errors.New("payout not found")
	ErrNoQuoteForPayout = errors.New("no approved quote to compute payout")
	ErrNoContractor     = errors.New("job has no assigned contractor")
)

// IPayoutUseCase creates the contractor's payout when a job completes and
// settles it later. Job done and money settled are separate facts: the
// contractor's running totals only move when the payout is marked paid.

type IPayoutUseCase interface {
	CreateForCompletedJob(ctx context.Context, job entities.Job) (entities.Payout, error)
	MarkPaid(ctx context.Context, jobID string, actor Actor) (entities.Payout, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Payout, error)
}

type PayoutUseCase struct {
	payouts     interfaces.IPayoutRepository
	quotes      interfaces.IQuoteRepository
	contractors interfaces.IContractorRepository
	events      interfaces.IJobEventRepository
	cfg         config.Config
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(
	payouts interfaces.IPayoutRepository,
	quotes interfaces.IQuoteRepository,
	contractors interfaces.IContractorRepository,
	events interfaces.IJobEventRepository,
	cfg config.Config,
) *PayoutUseCase {
	return &PayoutUseCase{payouts: payouts, quotes: quotes, contractors: contractors, events: events, cfg: cfg}
}

// CreateForCompletedJob records a pending payout at the configured share of
// the approved quote total. The payout table is keyed by job id, so a
// retried completion command finds the existing record and returns it
// unchanged.
func (u *PayoutUseCase) CreateForCompletedJob(ctx context.Context, job entities.Job) (entities.Payout, error) {
	if job.ID == "" {
		return entities.Payout{}, ErrInvalidJobID
	}
	if job.AssignedContractorID == "" {
		return entities.Payout{}, ErrNoContractor
	}

	quote, err := u.quotes.GetLatestByJobID(ctx, job.ID)
	if err != nil {
		return entities.Payout{}, err
	}
	if quote.ID == "" || quote.Status != entities.QuoteStatusApproved {
		return entities.Payout{}, ErrNoQuoteForPayout
	}

	payout := entities.Payout{
		ID:           uuid.NewString(),
		JobID:        job.ID,
		ContractorID: job.AssignedContractorID,
		AmountCents:  quote.TotalPriceCents * u.cfg.PayoutSharePercent / 100,
		Status:       entities.PayoutStatusPending,
		Method:       "manual",
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.payouts.Create(ctx, payout)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			existing, rerr := u.payouts.GetByJobID(ctx, job.ID)
			if rerr != nil {
				return entities.Payout{}, rerr
			}
			log.Printf("[payout][usecase] payout already exists job_id=%s payout_id=%s", job.ID, existing.ID)
			return existing, nil
		}
		return entities.Payout{}, err
	}

	u.appendEvent(ctx, job.ID, entities.EventPayoutCreated, SystemActor,
		map[string]any{"payout_id": created.ID, "contractor_id": created.ContractorID, "amount_cents": created.AmountCents})
	log.Printf("[payout][usecase] payout created job_id=%s payout_id=%s amount_cents=%d", job.ID, created.ID, created.AmountCents)
	return created, nil
}

// MarkPaid settles a pending payout. The pending-to-paid flip is the
// exactly-once gate: only the command that wins it increments the
// contractor's earnings and completed-jobs count.
func (u *PayoutUseCase) MarkPaid(ctx context.Context, jobID string, actor Actor) (entities.Payout, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Payout{}, ErrInvalidJobID
	}

	paid, err := u.payouts.MarkPaid(ctx, jobID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			existing, rerr := u.payouts.GetByJobID(ctx, jobID)
			if rerr != nil {
				return entities.Payout{}, rerr
			}
			if existing.ID == "" {
				return entities.Payout{}, ErrPayoutNotFound
			}
			// Already settled; nothing to add twice.
			log.Printf("[payout][usecase] mark paid repeated job_id=%s payout_id=%s status=%s", jobID, existing.ID, existing.Status)
			return existing, nil
		}
		return entities.Payout{}, err
	}

	if err := u.contractors.AddSettledEarnings(ctx, paid.ContractorID, paid.AmountCents); err != nil {
		// The payout flip committed; earnings must still follow. Surface the
		// error so the operator retries against the profile, not the payout.
		log.Printf("[payout][usecase] earnings update failed job_id=%s contractor_id=%s err=%v", jobID, paid.ContractorID, err)
		return paid, err
	}

	u.appendEvent(ctx, jobID, entities.EventPayoutPaid, actor,
		map[string]any{"payout_id": paid.ID, "contractor_id": paid.ContractorID, "amount_cents": paid.AmountCents})
	log.Printf("[payout][usecase] payout paid job_id=%s payout_id=%s amount_cents=%d", jobID, paid.ID, paid.AmountCents)
	return paid, nil
}

func (u *PayoutUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Payout, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Payout{}, ErrInvalidJobID
	}
	p, err := u.payouts.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Payout{}, err
	}
	if p.ID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	return p, nil
}

func (u *PayoutUseCase) appendEvent(ctx context.Context, jobID, eventType string, actor Actor, data map[string]any) {
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
		log.Printf("[payout][usecase] event append failed job_id=%s event_type=%s err=%v", jobID, eventType, err)
	}
}
