package handlers

import (
	"errors"
	"net/http"

	response "probridge/internal/adapter/http/dto/response"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
	"probridge/pkg"

	"github.com/gin-gonic/gin"
)

// PayoutHandler serves the operator's payout views and the mark-paid
// settlement command.

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

func (h *PayoutHandler) GetPayout(c *gin.Context) {
	payout, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayout(payout))
}

// MarkPaid settles a payout after the operator moved the money off-platform.
// Replays return the already-paid payout with 200; the contractor totals
// only ever move once.
func (h *PayoutHandler) MarkPaid(c *gin.Context) {
	actor := usecase.Actor{Kind: entities.ActorOperator, ID: c.Query("actor_id")}
	payout, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("job_id"), actor)
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayout(payout))
}

func mapPayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoQuoteForPayout), errors.Is(err, usecase.ErrNoContractor):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_COMPUTABLE", "Job is missing the data a payout needs", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
