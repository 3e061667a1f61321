package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "probridge/internal/adapter/http/dto/request"
	response "probridge/internal/adapter/http/dto/response"
	"probridge/internal/domain/entities"
	"probridge/internal/usecase"
	"probridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errMissingToken      = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing client token", http.StatusUnauthorized)
)

// JobHandler serves intake, the token-gated client views and the operator's
// lifecycle commands.

type JobHandler struct {
	intake    usecase.IIntakeUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewJobHandler(intake usecase.IIntakeUseCase, lifecycle usecase.ILifecycleUseCase) *JobHandler {
	return &JobHandler{intake: intake, lifecycle: lifecycle}
}

// CreateJob is the public intake endpoint. Matching runs inside the command,
// so the response already carries the post-matching status.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.intake.CreateJob(c.Request.Context(), usecase.CreateJobInput{
		ClientID:          payload.ClientID,
		CityID:            payload.CityID,
		ServiceCategoryID: payload.ServiceCategoryID,
		Title:             payload.Title,
		Description:       payload.Description,
		Zip:               payload.Zip,
		PreferredTiming:   payload.PreferredTiming,
		IsTest:            payload.IsTest,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedJob(job))
}

// GetJobStatus serves the client view. The token travels as a query param so
// status links can be shared as plain URLs.
func (h *JobHandler) GetJobStatus(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}

	view, err := h.intake.GetStatus(c.Request.Context(), c.Param("job_id"), token)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusView(view))
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	var payload request.ClientActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}

	job, err := h.intake.CancelByClient(c.Request.Context(), c.Param("job_id"), payload.ResolveToken())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetJob is the operator read: full job record, no token required.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.lifecycle.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobEvents(c *gin.Context) {
	events, err := h.lifecycle.ListEvents(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobEvents(events))
}

// ApplyTransition is the operator's generic lifecycle command, used for the
// post-confirmation stretch (scheduled, in_progress, completed) and for
// operator-side cancellations.
func (h *JobHandler) ApplyTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	target := entities.JobStatus(payload.ResolveTarget())
	actor := usecase.Actor{Kind: entities.ActorOperator, ID: payload.ActorID}

	var metadata map[string]any
	if payload.Reason != "" {
		metadata = map[string]any{"reason": payload.Reason}
	}

	job, err := h.lifecycle.ApplyTransition(c.Request.Context(), c.Param("job_id"), target, actor, metadata)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid client token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Job status changed concurrently, re-read and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
