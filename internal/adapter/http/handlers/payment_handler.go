package handlers

import (
	"errors"
	"net/http"

	request "probridge/internal/adapter/http/dto/request"
	response "probridge/internal/adapter/http/dto/response"
	"probridge/internal/usecase"
	"probridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)

// PaymentHandler receives gateway confirmations and serves operator payment
// reads.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// HandleWebhook processes a gateway confirmation. The gateway retries on
// non-2xx, so anything the reconciler already settled (duplicates, stale
// failures) returns 200 rather than an error.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	confirmation, err := payload.ToConfirmation()
	if err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.HandleConfirmation(c.Request.Context(), confirmation)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidExternalID), errors.Is(err, usecase.ErrInvalidOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoApprovedQuote):
		return pkg.NewDomainErrorSimple("NO_APPROVED_QUOTE", "Job has no approved quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_AVAILABLE", "Job cannot start checkout in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Payment state changed concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
