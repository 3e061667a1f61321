package usecase

import (
	"context"
	"log"

	"probridge/internal/domain/entities"
)

// Actor is the identity tuple recorded with every command. Authentication
// happens upstream; the orchestrator only records what it is handed.
type Actor struct {
	Kind entities.ActorKind
	ID   string
}

// SystemActor is used for transitions the platform applies on its own.
var SystemActor = Actor{Kind: entities.ActorSystem}

// TransitionHandler is a side effect bound to a target status. Handlers are
// best-effort: an error is logged and isolated, never rolled back into the
// already-committed transition.
type TransitionHandler func(ctx context.Context, job entities.Job, actor Actor, metadata map[string]any) error

// Dispatcher routes accepted transitions to their side-effect handlers
// (matching, quote notifications, payment reconciliation follow-ups, payout
// creation). Registration happens once at wiring; Dispatch is safe to call
// concurrently afterwards.

type Dispatcher struct {
	handlers map[entities.JobStatus][]TransitionHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[entities.JobStatus][]TransitionHandler)}
}

// On binds a handler to a target status. Not safe for concurrent use with
// Dispatch; call during wiring only.
func (d *Dispatcher) On(target entities.JobStatus, h TransitionHandler) {
	d.handlers[target] = append(d.handlers[target], h)
}

// Dispatch runs every handler bound to the job's (new) status. Handler
// failures are logged and swallowed.
func (d *Dispatcher) Dispatch(ctx context.Context, job entities.Job, actor Actor, metadata map[string]any) {
	for _, h := range d.handlers[job.Status] {
		if err := h(ctx, job, actor, metadata); err != nil {
			log.Printf("[dispatcher][usecase] handler failed job_id=%s status=%s err=%v", job.ID, job.Status, err)
		}
	}
}
