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
	ErrInvalidContractorID  = errors.New("invalid contractor id")
	ErrContractorNotFound   = errors.New("contractor not found")
	ErrContractorNotActive  = errors.New("contractor not active")
	ErrOfferAlreadyTaken    = errors.New("offer already taken")
	ErrJobNotOffering       = errors.New("job is not offering contractors")
	ErrJobAlreadyDispatched = errors.New("job already left intake")
)

// IMatchingUseCase selects contractors for a new job and arbitrates the
// accept race.

type IMatchingUseCase interface {
	DispatchOffers(ctx context.Context, jobID string) (entities.Job, error)
	AcceptOffer(ctx context.Context, jobID, contractorID string) (entities.Job, error)
}

type MatchingUseCase struct {
	jobs        interfaces.IJobRepository
	events      interfaces.IJobEventRepository
	contractors interfaces.IContractorRepository
	notifier    interfaces.INotifier
	lifecycle   *LifecycleUseCase
	cfg         config.Config
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

func NewMatchingUseCase(
	jobs interfaces.IJobRepository,
	events interfaces.IJobEventRepository,
	contractors interfaces.IContractorRepository,
	notifier interfaces.INotifier,
	lifecycle *LifecycleUseCase,
	cfg config.Config,
) *MatchingUseCase {
	return &MatchingUseCase{jobs: jobs, events: events, contractors: contractors, notifier: notifier, lifecycle: lifecycle, cfg: cfg}
}

// DispatchOffers matches a freshly created job against the contractor
// directory (same city, offering the service category, active) and moves it
// to offering_contractors, or straight to no_contractor_found when nobody
// matches. The fallback is part of the same logical operation, not a poll.
func (u *MatchingUseCase) DispatchOffers(ctx context.Context, jobID string) (entities.Job, error) {
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
	if job.Status != entities.JobStatusNew {
		return entities.Job{}, ErrJobAlreadyDispatched
	}

	candidates, err := u.contractors.ListActiveByCityAndService(ctx, job.CityID, job.ServiceCategoryID, u.cfg.MaxContractorOffersPerJob)
	if err != nil {
		return entities.Job{}, err
	}

	if len(candidates) == 0 {
		log.Printf("[matching][usecase] no contractors job_id=%s city_id=%s category_id=%s", jobID, job.CityID, job.ServiceCategoryID)
		return u.lifecycle.ApplyTransition(ctx, jobID, entities.JobStatusNoContractorFound, SystemActor, nil)
	}

	updated, err := u.lifecycle.ApplyTransition(ctx, jobID, entities.JobStatusOfferingContractors, SystemActor,
		map[string]any{"offer_count": len(candidates)})
	if err != nil {
		return entities.Job{}, err
	}

	// Offers are events plus notifications; the contractor profiles are not
	// touched.
	now := time.Now().UTC()
	for _, c := range candidates {
		ev := entities.JobEvent{
			ID:        uuid.NewString(),
			JobID:     jobID,
			EventType: entities.EventOfferPrepared,
			ActorKind: entities.ActorSystem,
			Data:      map[string]any{"contractor_id": c.ID},
			CreatedAt: now,
		}
		if err := u.events.Append(ctx, ev); err != nil {
			log.Printf("[matching][usecase] offer event append failed job_id=%s contractor_id=%s err=%v", jobID, c.ID, err)
		}
		if err := u.notifier.Notify(ctx, entities.ActorContractor, c.ID, "contractor_new_offer", map[string]any{"job_id": jobID}); err != nil {
			log.Printf("[matching][usecase] contractor notify failed job_id=%s contractor_id=%s err=%v", jobID, c.ID, err)
		}
	}
	summary := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     jobID,
		EventType: entities.EventContractorOffersPrepared,
		ActorKind: entities.ActorSystem,
		Data:      map[string]any{"count": len(candidates)},
		CreatedAt: now,
	}
	if err := u.events.Append(ctx, summary); err != nil {
		log.Printf("[matching][usecase] summary event append failed job_id=%s err=%v", jobID, err)
	}
	log.Printf("[matching][usecase] offers dispatched job_id=%s count=%d", jobID, len(candidates))
	return updated, nil
}

// AcceptOffer assigns the job to the calling contractor.
//
// The assignment is one conditional write: set the contractor and move to
// awaiting_quote only while the job is still offering_contractors with no
// contractor set. Among racing contractors exactly one succeeds; the rest
// get ErrOfferAlreadyTaken and must re-browse (no automatic re-offer).
func (u *MatchingUseCase) AcceptOffer(ctx context.Context, jobID, contractorID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Job{}, ErrInvalidContractorID
	}

	contractor, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return entities.Job{}, err
	}
	if contractor.ID == "" {
		return entities.Job{}, ErrContractorNotFound
	}
	if contractor.Status != entities.ContractorStatusActive {
		return entities.Job{}, ErrContractorNotActive
	}

	now := time.Now().UTC()
	job, err := u.jobs.AssignContractor(ctx, jobID, contractorID, now)
	if err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, err
		}
		current, rerr := u.jobs.GetByID(ctx, jobID)
		if rerr != nil {
			return entities.Job{}, rerr
		}
		if current.ID == "" {
			return entities.Job{}, ErrJobNotFound
		}
		if current.Status == entities.JobStatusNew {
			return entities.Job{}, ErrJobNotOffering
		}
		log.Printf("[matching][usecase] accept lost race job_id=%s contractor_id=%s status=%s assigned=%s",
			jobID, contractorID, current.Status, current.AssignedContractorID)
		return entities.Job{}, ErrOfferAlreadyTaken
	}

	accepted := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     jobID,
		EventType: entities.EventOfferAccepted,
		ActorKind: entities.ActorContractor,
		ActorID:   contractorID,
		Data:      map[string]any{"contractor_id": contractorID},
		CreatedAt: now,
	}
	if err := u.events.Append(ctx, accepted); err != nil {
		log.Printf("[matching][usecase] accept event append failed job_id=%s err=%v", jobID, err)
	}

	// The combined write already flipped the status; record the transition
	// and run the awaiting_quote handlers the same way ApplyTransition would.
	u.lifecycle.afterTransition(ctx, job, Actor{Kind: entities.ActorContractor, ID: contractorID},
		map[string]any{"contractor_id": contractorID})

	log.Printf("[matching][usecase] offer accepted job_id=%s contractor_id=%s", jobID, contractorID)
	return job, nil
}
