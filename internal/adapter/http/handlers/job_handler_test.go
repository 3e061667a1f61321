package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"probridge/internal/adapter/http/handlers/mocks"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the view token once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		intake.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
			Return(entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusOfferingContractors, ClientViewToken: "tok-1"}, nil)

		body := `{"client_id":"client-1","city_id":"abq","service_category_id":"handyman","title":"Fix the gate","description":"Back gate latch is broken"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["client_view_token"] != "tok-1" {
			t.Fatalf("expected the view token in the create response, got %v", resp)
		}
		if resp["status"] != string(entities.JobStatusOfferingContractors) {
			t.Fatalf("expected offering_contractors, got %v", resp["status"])
		}
	})
}

func TestJobHandler_GetJobStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/status", h.GetJobStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/status", h.GetJobStatus)

		intake.EXPECT().GetStatus(gomock.Any(), "job-1", "tok-guess").
			Return(usecase.JobStatusView{}, usecase.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/status?token=tok-guess", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/status", h.GetJobStatus)

		intake.EXPECT().GetStatus(gomock.Any(), "job-1", "tok-1").Return(usecase.JobStatusView{
			Job:         entities.Job{ID: "job-1", Status: entities.JobStatusQuoteSent},
			HasQuote:    true,
			QuoteTotal:  12000,
			QuoteStatus: entities.QuoteStatusSentToClient,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/status?token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_CancelJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel after work started is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/cancel", h.CancelJob)

		intake.EXPECT().CancelByClient(gomock.Any(), "job-1", "tok-1").
			Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/cancel", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/cancel", h.CancelJob)

		intake.EXPECT().CancelByClient(gomock.Any(), "job-1", "tok-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelledByClient}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/cancel", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_ApplyTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/transition", h.ApplyTransition)

		lifecycle.EXPECT().ApplyTransition(gomock.Any(), "job-1", entities.JobStatusCompleted, gomock.Any(), gomock.Any()).
			Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/transition", bytes.NewBufferString(`{"target":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("state conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/transition", h.ApplyTransition)

		lifecycle.EXPECT().ApplyTransition(gomock.Any(), "job-1", entities.JobStatusInProgress, gomock.Any(), gomock.Any()).
			Return(entities.Job{}, usecase.ErrStateConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/transition", bytes.NewBufferString(`{"target":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("operator completes the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/transition", h.ApplyTransition)

		lifecycle.EXPECT().ApplyTransition(gomock.Any(), "job-1", entities.JobStatusCompleted,
			usecase.Actor{Kind: entities.ActorOperator, ID: "op-1"}, gomock.Any()).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/transition", bytes.NewBufferString(`{"target":"Completed ","actor_id":"op-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.GET("/v1/jobs/:job_id", h.GetJob)

		lifecycle.EXPECT().GetJob(gomock.Any(), "job-x").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("events list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewJobHandler(intake, lifecycle)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/events", h.ListJobEvents)

		lifecycle.EXPECT().ListEvents(gomock.Any(), "job-1").Return([]entities.JobEvent{
			{ID: "ev-1", JobID: "job-1", EventType: entities.EventJobCreated},
			{ID: "ev-2", JobID: "job-1", EventType: "status_offering_contractors"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
