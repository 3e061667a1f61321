package handlers

import (
	"bytes"
	"context"
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

func quoteHandlerFixture(t *testing.T) (*QuoteHandler, *mocks.MockIQuoteUseCase, *mocks.MockIPaymentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	return NewQuoteHandler(quotes, payments), quotes, payments
}

func TestQuoteHandler_CreateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		h, _, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote", h.CreateDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote", bytes.NewBufferString(`{"line_items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved quote blocks re-quoting", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote", h.CreateDraft)

		quotes.EXPECT().CreateOrReplaceDraft(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, usecase.ErrQuoteApproved)

		body := `{"line_items":[{"kind":"base","label":"Base service","quantity":1,"unit_price_cents":10000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote", h.CreateDraft)

		quotes.EXPECT().CreateOrReplaceDraft(gomock.Any(), "job-1", gomock.Any(), usecase.Actor{Kind: entities.ActorOperator, ID: "op-1"}).
			DoAndReturn(func(_ context.Context, _ string, items []usecase.LineItemInput, _ usecase.Actor) (entities.Quote, error) {
				if len(items) != 2 {
					t.Fatalf("expected 2 line items, got %d", len(items))
				}
				return entities.Quote{ID: "q-1", JobID: "job-1", Version: 1, Status: entities.QuoteStatusDraft, TotalPriceCents: 12000}, nil
			})

		body := `{"actor_id":"op-1","line_items":[
			{"kind":"base","label":"Base service","quantity":1,"unit_price_cents":10000},
			{"kind":"upsell","label":"Extra materials","quantity":2,"unit_price_cents":1000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no draft", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/send", h.SendQuote)

		quotes.EXPECT().Send(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrNoQuoteToSend)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/send", h.SendQuote)

		quotes.EXPECT().Send(gomock.Any(), "job-1", usecase.Actor{Kind: entities.ActorOperator, ID: "op-1"}).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentToClient}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/send?actor_id=op-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong token", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/approve", h.ApproveQuote)

		quotes.EXPECT().Approve(gomock.Any(), "job-1", "tok-guess").
			Return(usecase.ApprovalResult{}, usecase.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/approve", bytes.NewBufferString(`{"token":"tok-guess"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("approval starts checkout", func(t *testing.T) {
		h, quotes, payments := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/approve", h.ApproveQuote)

		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusQuoteSent}
		quotes.EXPECT().Approve(gomock.Any(), "job-1", "tok-1").
			Return(usecase.ApprovalResult{Job: job, Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}}, nil)
		payments.EXPECT().StartCheckout(gomock.Any(), "job-1", usecase.Actor{Kind: entities.ActorClient, ID: "client-1"}).
			Return(usecase.StartCheckoutResult{
				Job:         entities.Job{ID: "job-1", Status: entities.JobStatusAwaitingPayment},
				Payment:     entities.Payment{ID: "p-1", Status: entities.PaymentStatusPending},
				CheckoutURL: "https://checkout.local/ext-1",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/approve", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["checkout_url"] != "https://checkout.local/ext-1" {
			t.Fatalf("expected a checkout url, got %v", resp)
		}
	})

	t.Run("replayed approve after confirmation is a no-op", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/approve", h.ApproveQuote)

		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusConfirmed}
		quotes.EXPECT().Approve(gomock.Any(), "job-1", "tok-1").
			Return(usecase.ApprovalResult{Job: job, Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, NoActionNeeded: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/approve", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["confirmed"] != true {
			t.Fatalf("expected confirmed=true, got %v", resp)
		}
	})

	t.Run("replayed approve while awaiting payment restarts checkout", func(t *testing.T) {
		h, quotes, _ := quoteHandlerFixture(t)
		r := gin.New()
		r.POST("/v1/jobs/:job_id/quote/approve", h.ApproveQuote)

		job := entities.Job{ID: "job-1", ClientID: "client-1", Status: entities.JobStatusAwaitingPayment}
		quotes.EXPECT().Approve(gomock.Any(), "job-1", "tok-1").
			Return(usecase.ApprovalResult{Job: job, Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, NoActionNeeded: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quote/approve", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["confirmed"] != false {
			t.Fatalf("expected confirmed=false while awaiting payment, got %v", resp)
		}
	})
}
