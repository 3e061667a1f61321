package handlers

import (
	"errors"
	"net/http"

	request "probridge/internal/adapter/http/dto/request"
	response "probridge/internal/adapter/http/dto/response"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
	"probridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler serves the operator's quote commands and the client's
// approval. Approval composes two use cases: approve the quote, then start
// checkout (or confirm directly when payment is not required up front).

type QuoteHandler struct {
	quotes   usecase.IQuoteUseCase
	payments usecase.IPaymentUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, payments usecase.IPaymentUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, payments: payments}
}

// CreateDraft stores a new quote version, superseding any earlier draft or
// sent quote for the job.
func (h *QuoteHandler) CreateDraft(c *gin.Context) {
	var payload request.QuoteDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	actor := usecase.Actor{Kind: entities.ActorOperator, ID: payload.ActorID}
	quote, err := h.quotes.CreateOrReplaceDraft(c.Request.Context(), c.Param("job_id"), payload.ToInputs(), actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	actor := usecase.Actor{Kind: entities.ActorOperator, ID: c.Query("actor_id")}
	quote, err := h.quotes.Send(c.Request.Context(), c.Param("job_id"), actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetLatestQuote(c *gin.Context) {
	quote, err := h.quotes.GetLatestByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ApproveQuote is the client's accept. A replayed approve is not an error:
// the checkout step runs again and returns the current state, so the client
// always ends up with a usable answer.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	var payload request.ClientActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	result, err := h.quotes.Approve(c.Request.Context(), jobID, payload.ResolveToken())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.NoActionNeeded && result.Job.Status != entities.JobStatusQuoteSent {
		// Already past checkout; nothing to restart.
		c.JSON(http.StatusOK, response.CheckoutResponse{
			Job:       response.FromJob(result.Job),
			Confirmed: result.Job.Status != entities.JobStatusAwaitingPayment,
		})
		return
	}

	checkout, err := h.payments.StartCheckout(c.Request.Context(), jobID, usecase.Actor{Kind: entities.ActorClient, ID: result.Job.ClientID})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrEmptyLineItems), errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid client token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoQuoteToSend), errors.Is(err, usecase.ErrNoQuoteToApprove):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "No quote in the required state", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Job is not accepting quote drafts", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteApproved):
		return pkg.NewDomainErrorSimple("QUOTE_APPROVED", "Approved quote cannot be replaced", http.StatusConflict)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Quote state changed concurrently, re-read and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
