package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"probridge/internal/adapter/http/handlers/mocks"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMatchingHandler_AcceptOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/accept", h.AcceptOffer)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("winner gets the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/accept", h.AcceptOffer)

		uc.EXPECT().AcceptOffer(gomock.Any(), "job-1", "c-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusAwaitingQuote, AssignedContractorID: "c-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept", bytes.NewBufferString(`{"contractor_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("loser gets a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/accept", h.AcceptOffer)

		uc.EXPECT().AcceptOffer(gomock.Any(), "job-1", "c-2").
			Return(entities.Job{}, usecase.ErrOfferAlreadyTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept", bytes.NewBufferString(`{"contractor_id":"c-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("suspended contractor is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/accept", h.AcceptOffer)

		uc.EXPECT().AcceptOffer(gomock.Any(), "job-1", "c-3").
			Return(entities.Job{}, usecase.ErrContractorNotActive)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept", bytes.NewBufferString(`{"contractor_id":"c-3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMatchingHandler_DispatchOffers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("job already left intake", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/dispatch", h.DispatchOffers)

		uc.EXPECT().DispatchOffers(gomock.Any(), "job-1").
			Return(entities.Job{}, usecase.ErrJobAlreadyDispatched)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/dispatch", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMatchingUseCase(ctrl)
		h := NewMatchingHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/dispatch", h.DispatchOffers)

		uc.EXPECT().DispatchOffers(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusOfferingContractors}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/dispatch", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
