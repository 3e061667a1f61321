package usecase

import (
	"context"
	"errors"
	"testing"

	"probridge/internal/config"
	"probridge/internal/domain/entities"
	mock_interfaces "probridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegisterSideEffects(t *testing.T) {
	t.Run("completed job triggers payout creation and notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payouts := mock_interfaces.NewMockIPayoutRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		events := mock_interfaces.NewMockIJobEventRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		payoutUC := NewPayoutUseCase(payouts, quotes, contractors, events, config.Config{PayoutSharePercent: 70})
		d := NewDispatcher()
		RegisterSideEffects(d, payoutUC, notifier)

		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusCompleted, AssignedContractorID: "c-1"}

		quotes.EXPECT().GetLatestByJobID(gomock.Any(), "job-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, TotalPriceCents: 12000}, nil)
		payouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payout) (entities.Payout, error) {
				if p.AmountCents != 8400 {
					t.Fatalf("expected 8400 cents, got %d", p.AmountCents)
				}
				return p, nil
			},
		)
		events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), entities.ActorOperator, "", "payout_pending", gomock.Any()).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), entities.ActorClient, "client-1", "client_job_completed_review_request", gomock.Any()).Return(nil)

		d.Dispatch(context.Background(), job, SystemActor, nil)
	})

	t.Run("quote_sent notifies the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		d := NewDispatcher()
		RegisterSideEffects(d, nil, notifier)

		notifier.EXPECT().Notify(gomock.Any(), entities.ActorClient, "client-1", "client_quote_ready", gomock.Any()).Return(nil)

		d.Dispatch(context.Background(), entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusQuoteSent}, SystemActor, nil)
	})

	t.Run("handler failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		d := NewDispatcher()
		RegisterSideEffects(d, nil, notifier)

		notifier.EXPECT().Notify(gomock.Any(), entities.ActorOperator, "", "operator_no_contractor_found", gomock.Any()).
			Return(errors.New("delivery backend down"))

		// Must not panic or propagate.
		d.Dispatch(context.Background(), entities.Job{ID: "job-1", Status: entities.JobStatusNoContractorFound}, SystemActor, nil)
	})
}
