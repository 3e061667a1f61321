package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"probridge/internal/adapter/http/handlers/mocks"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPayoutHandler_GetPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/payout", h.GetPayout)

		uc.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Payout{}, usecase.ErrPayoutNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/payout", h.GetPayout)

		uc.EXPECT().GetByJobID(gomock.Any(), "job-1").
			Return(entities.Payout{ID: "po-1", JobID: "job-1", ContractorID: "c-1", AmountCents: 8400, Status: entities.PayoutStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPayoutHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing job data is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payout/mark-paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Payout{}, usecase.ErrNoQuoteForPayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payout/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("settles with the operator as actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payout/mark-paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "job-1", usecase.Actor{Kind: entities.ActorOperator, ID: "op-1"}).
			Return(entities.Payout{ID: "po-1", JobID: "job-1", ContractorID: "c-1", AmountCents: 8400, Status: entities.PayoutStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payout/mark-paid?actor_id=op-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
