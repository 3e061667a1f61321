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

var errInvalidAcceptPayload = pkg.NewDomainErrorSimple("INVALID_ACCEPT_INPUT", "Invalid accept payload", http.StatusBadRequest)

// MatchingHandler serves contractor-side offer acceptance and the operator's
// manual re-dispatch.

type MatchingHandler struct {
	usecase usecase.IMatchingUseCase
}

func NewMatchingHandler(uc usecase.IMatchingUseCase) *MatchingHandler {
	return &MatchingHandler{usecase: uc}
}

// AcceptOffer claims an open offer for a contractor. First accept wins;
// losers get 409 OFFER_ALREADY_TAKEN and should go back to browsing.
func (h *MatchingHandler) AcceptOffer(c *gin.Context) {
	var payload request.AcceptOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAcceptPayload.HTTPStatus, errInvalidAcceptPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AcceptOffer(c.Request.Context(), c.Param("job_id"), payload.ResolveContractorID())
	if err != nil {
		appErr := mapMatchingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// DispatchOffers re-runs matching for a job still in intake. Useful when the
// contractor pool changed after a no-match.
func (h *MatchingHandler) DispatchOffers(c *gin.Context) {
	job, err := h.usecase.DispatchOffers(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapMatchingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapMatchingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotActive):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_ACTIVE", "Contractor is not active", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOfferAlreadyTaken):
		return pkg.NewDomainErrorSimple("OFFER_ALREADY_TAKEN", "Another contractor already accepted this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotOffering):
		return pkg.NewDomainErrorSimple("JOB_NOT_OFFERING", "Job is not open for offers", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobAlreadyDispatched):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_DISPATCHED", "Job already left intake", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
