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
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStateConflict     = errors.New("job status changed concurrently")
)

// ILifecycleUseCase is the state machine core: it validates a command
// against the transition table and commits it with a single conditional
// write, so concurrent commands on one job serialize at the store without
// any lock manager.

type ILifecycleUseCase interface {
	ApplyTransition(ctx context.Context, jobID string, target entities.JobStatus, actor Actor, metadata map[string]any) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	ListEvents(ctx context.Context, jobID string) ([]entities.JobEvent, error)
}

type LifecycleUseCase struct {
	jobs       interfaces.IJobRepository
	events     interfaces.IJobEventRepository
	dispatcher *Dispatcher
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(jobs interfaces.IJobRepository, events interfaces.IJobEventRepository, dispatcher *Dispatcher) *LifecycleUseCase {
	return &LifecycleUseCase{jobs: jobs, events: events, dispatcher: dispatcher}
}

// ApplyTransition moves a job to the target status.
//
// The status check and write are one conditional operation against the job
// store. If the job's status moved between our read and the write, the
// command fails with ErrStateConflict; the caller re-reads and decides. No
// transition is ever retried silently here.
func (u *LifecycleUseCase) ApplyTransition(ctx context.Context, jobID string, target entities.JobStatus, actor Actor, metadata map[string]any) (entities.Job, error) {
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
	if !entities.CanTransition(job.Status, target) {
		log.Printf("[lifecycle][usecase] invalid transition job_id=%s from=%s to=%s", jobID, job.Status, target)
		return entities.Job{}, ErrInvalidTransition
	}
	// awaiting_quote implies an assigned contractor. The only way in is the
	// accept-offer conditional assign, which sets both in one write; the
	// generic command refuses the move so the pairing cannot be broken.
	if target == entities.JobStatusAwaitingQuote && job.AssignedContractorID == "" {
		log.Printf("[lifecycle][usecase] transition refused job_id=%s to=%s no contractor assigned", jobID, target)
		return entities.Job{}, ErrInvalidTransition
	}

	updated, err := u.jobs.UpdateStatus(ctx, jobID, job.Status, target, transitionStamps(job, target))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// Lost the race: another command moved the job first. Jobs are
			// never deleted, so a failed guard always means a status change.
			log.Printf("[lifecycle][usecase] state conflict job_id=%s expected=%s target=%s", jobID, job.Status, target)
			return entities.Job{}, ErrStateConflict
		}
		return entities.Job{}, err
	}
	log.Printf("[lifecycle][usecase] transition committed job_id=%s from=%s to=%s actor=%s", jobID, job.Status, target, actor.Kind)

	u.afterTransition(ctx, updated, actor, metadata)
	return updated, nil
}

func (u *LifecycleUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
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
	return job, nil
}

func (u *LifecycleUseCase) ListEvents(ctx context.Context, jobID string) ([]entities.JobEvent, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.events.ListByJobID(ctx, jobID)
}

// afterTransition records the audit event and runs the bound side-effect
// handlers. The transition is already committed at this point: an event or
// handler failure is logged, never propagated back to the caller.
func (u *LifecycleUseCase) afterTransition(ctx context.Context, job entities.Job, actor Actor, metadata map[string]any) {
	ev := entities.JobEvent{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		EventType: entities.StatusEventType(job.Status),
		ActorKind: actor.Kind,
		ActorID:   actor.ID,
		Data:      metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.events.Append(ctx, ev); err != nil {
		log.Printf("[lifecycle][usecase] event append failed job_id=%s event_type=%s err=%v", job.ID, ev.EventType, err)
	}
	u.dispatcher.Dispatch(ctx, job, actor, metadata)
}

// transitionStamps derives the timestamp fields a target status implies.
// accepted_at is only stamped on the first entry into awaiting_quote.
func transitionStamps(job entities.Job, target entities.JobStatus) interfaces.StatusStamps {
	now := time.Now().UTC()
	var s interfaces.StatusStamps
	switch target {
	case entities.JobStatusAwaitingQuote:
		if job.AcceptedAt == nil {
			s.AcceptedAt = &now
		}
	case entities.JobStatusCompleted:
		s.CompletedAt = &now
	case entities.JobStatusCancelledByClient, entities.JobStatusCancelledInternal:
		s.CancelledAt = &now
	}
	return s
}
