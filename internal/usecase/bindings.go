package usecase

import (
	"context"
	"log"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"
)

// RegisterSideEffects binds the side-effect handlers to the transitions that
// trigger them. Notifications are best-effort records for the delivery
// collaborator; the payout handler is the one financially meaningful binding
// and is idempotent on its own (payouts are keyed by job).
func RegisterSideEffects(d *Dispatcher, payouts IPayoutUseCase, notifier interfaces.INotifier) {
	d.On(entities.JobStatusAwaitingQuote, func(ctx context.Context, job entities.Job, actor Actor, _ map[string]any) error {
		return notifier.Notify(ctx, entities.ActorOperator, "", "operator_offer_accepted",
			map[string]any{"job_id": job.ID, "contractor_id": job.AssignedContractorID})
	})

	d.On(entities.JobStatusQuoteSent, func(ctx context.Context, job entities.Job, _ Actor, _ map[string]any) error {
		return notifier.Notify(ctx, entities.ActorClient, job.ClientID, "client_quote_ready",
			map[string]any{"job_id": job.ID})
	})

	d.On(entities.JobStatusConfirmed, func(ctx context.Context, job entities.Job, _ Actor, _ map[string]any) error {
		if job.AssignedContractorID != "" {
			if err := notifier.Notify(ctx, entities.ActorContractor, job.AssignedContractorID, "contractor_job_confirmed",
				map[string]any{"job_id": job.ID}); err != nil {
				log.Printf("[bindings][usecase] contractor confirm notify failed job_id=%s err=%v", job.ID, err)
			}
		}
		return notifier.Notify(ctx, entities.ActorOperator, "", "client_payment_received",
			map[string]any{"job_id": job.ID})
	})

	d.On(entities.JobStatusNoContractorFound, func(ctx context.Context, job entities.Job, _ Actor, _ map[string]any) error {
		return notifier.Notify(ctx, entities.ActorOperator, "", "operator_no_contractor_found",
			map[string]any{"job_id": job.ID})
	})

	d.On(entities.JobStatusCompleted, func(ctx context.Context, job entities.Job, _ Actor, _ map[string]any) error {
		payout, err := payouts.CreateForCompletedJob(ctx, job)
		if err != nil {
			return err
		}
		if err := notifier.Notify(ctx, entities.ActorOperator, "", "payout_pending",
			map[string]any{"job_id": job.ID, "payout_id": payout.ID}); err != nil {
			log.Printf("[bindings][usecase] payout notify failed job_id=%s err=%v", job.ID, err)
		}
		return notifier.Notify(ctx, entities.ActorClient, job.ClientID, "client_job_completed_review_request",
			map[string]any{"job_id": job.ID})
	})
}
