package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"probridge/internal/config"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"
	mock_interfaces "probridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type intakeMocks struct {
	jobs        *mock_interfaces.MockIJobRepository
	events      *mock_interfaces.MockIJobEventRepository
	quotes      *mock_interfaces.MockIQuoteRepository
	payments    *mock_interfaces.MockIPaymentRepository
	contractors *mock_interfaces.MockIContractorRepository
	notifier    *mock_interfaces.MockINotifier
}

func intakeFixture(t *testing.T) (*IntakeUseCase, intakeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := intakeMocks{
		jobs:        mock_interfaces.NewMockIJobRepository(ctrl),
		events:      mock_interfaces.NewMockIJobEventRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		payments:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		contractors: mock_interfaces.NewMockIContractorRepository(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
	}
	lifecycle := NewLifecycleUseCase(m.jobs, m.events, NewDispatcher())
	matching := NewMatchingUseCase(m.jobs, m.events, m.contractors, m.notifier, lifecycle, config.Config{MaxContractorOffersPerJob: 5})
	uc := NewIntakeUseCase(m.jobs, m.events, m.quotes, m.payments, matching, lifecycle)
	return uc, m
}

func validIntakeInput() CreateJobInput {
	return CreateJobInput{
		ClientID:          "client-1",
		CityID:            "abq",
		ServiceCategoryID: "handyman",
		Title:             "Fix the gate",
		Description:       "Back gate latch is broken",
		Zip:               "87101",
	}
}

func TestIntakeUseCase_CreateJob(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		uc, _ := intakeFixture(t)
		in := validIntakeInput()
		in.Description = "   "

		_, err := uc.CreateJob(context.Background(), in)
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("creates job and dispatches offers", func(t *testing.T) {
		uc, m := intakeFixture(t)

		var created entities.Job
		m.jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.ClientViewToken == "" {
					t.Fatalf("expected generated id and view token, got %+v", j)
				}
				if j.Status != entities.JobStatusNew {
					t.Fatalf("expected status new, got %s", j.Status)
				}
				created = j
				return j, nil
			},
		)
		m.jobs.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Job, error) {
				return created, nil
			},
		).Times(2)
		m.contractors.EXPECT().ListActiveByCityAndService(gomock.Any(), "abq", "handyman", 5).
			Return([]entities.ContractorProfile{{ID: "c-1", Status: entities.ContractorStatusActive}}, nil)
		m.jobs.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.JobStatusNew, entities.JobStatusOfferingContractors, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _, target entities.JobStatus, _ interfaces.StatusStamps) (entities.Job, error) {
				j := created
				j.Status = target
				return j, nil
			})
		// job_created, status event, one offer, one summary.
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(4)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.ActorContractor, "c-1", "contractor_new_offer", gomock.Any()).Return(nil)

		job, err := uc.CreateJob(context.Background(), validIntakeInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusOfferingContractors {
			t.Fatalf("expected offering_contractors, got %s", job.Status)
		}
	})

	t.Run("matching failure still returns the created job", func(t *testing.T) {
		uc, m := intakeFixture(t)

		var created entities.Job
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				created = j
				return j, nil
			},
		)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Job, error) {
				return created, nil
			},
		)
		m.contractors.EXPECT().ListActiveByCityAndService(gomock.Any(), "abq", "handyman", 5).
			Return(nil, errors.New("directory unavailable"))

		job, err := uc.CreateJob(context.Background(), validIntakeInput())
		if err != nil {
			t.Fatalf("expected intake to survive a matching failure, got %v", err)
		}
		if job.Status != entities.JobStatusNew {
			t.Fatalf("expected the pre-matching job back, got %s", job.Status)
		}
	})
}

func TestIntakeUseCase_GetStatus(t *testing.T) {
	job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusQuoteSent, ClientViewToken: "tok-1"}

	t.Run("wrong token", func(t *testing.T) {
		uc, m := intakeFixture(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.GetStatus(context.Background(), "job-1", "tok-guess")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("view carries latest quote and payment", func(t *testing.T) {
		uc, m := intakeFixture(t)
		base := time.Now().UTC()

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		m.quotes.EXPECT().GetLatestByJobID(gomock.Any(), "job-1").
			Return(entities.Quote{ID: "q-2", JobID: "job-1", Status: entities.QuoteStatusSentToClient, TotalPriceCents: 12000}, nil)
		m.payments.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Payment{
			{ID: "p-1", Status: entities.PaymentStatusFailed, CreatedAt: base},
			{ID: "p-2", Status: entities.PaymentStatusPending, CreatedAt: base.Add(time.Minute)},
		}, nil)

		view, err := uc.GetStatus(context.Background(), "job-1", "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.HasQuote || view.QuoteTotal != 12000 || view.QuoteStatus != entities.QuoteStatusSentToClient {
			t.Fatalf("unexpected quote view: %+v", view)
		}
		if !view.HasPayment || view.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("expected the newest payment status, got %+v", view)
		}
	})

	t.Run("no quote yet", func(t *testing.T) {
		uc, m := intakeFixture(t)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		m.quotes.EXPECT().GetLatestByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, nil)
		m.payments.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		view, err := uc.GetStatus(context.Background(), "job-1", "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.HasQuote || view.HasPayment {
			t.Fatalf("expected an empty summary, got %+v", view)
		}
	})
}

func TestIntakeUseCase_CancelByClient(t *testing.T) {
	t.Run("cancel before work starts", func(t *testing.T) {
		uc, m := intakeFixture(t)
		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusQuoteSent, ClientViewToken: "tok-1"}

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(2)
		m.jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusQuoteSent, entities.JobStatusCancelledByClient, gomock.Any()).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelledByClient}, nil)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.JobEvent) error {
				if ev.ActorKind != entities.ActorClient || ev.ActorID != "client-1" {
					t.Fatalf("expected the client as actor, got %+v", ev)
				}
				return nil
			},
		)

		cancelled, err := uc.CancelByClient(context.Background(), "job-1", "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.Status != entities.JobStatusCancelledByClient {
			t.Fatalf("expected cancelled_by_client, got %s", cancelled.Status)
		}
	})

	t.Run("cancel window closed once work started", func(t *testing.T) {
		uc, m := intakeFixture(t)
		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusInProgress, ClientViewToken: "tok-1"}

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(2)

		_, err := uc.CancelByClient(context.Background(), "job-1", "tok-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
