package routes

import (
	"probridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathPayments = "/payments"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	matchingHandler *handlers.MatchingHandler,
	quoteHandler *handlers.QuoteHandler,
	paymentHandler *handlers.PaymentHandler,
	payoutHandler *handlers.PayoutHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		// Client-facing (intake is public, reads and actions are token-gated).
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id/status", jobHandler.GetJobStatus)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)
		jobs.POST("/:job_id/quote/approve", quoteHandler.ApproveQuote)

		// Contractor-facing.
		jobs.POST("/:job_id/accept", matchingHandler.AcceptOffer)

		// Operator console.
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.GET("/:job_id/events", jobHandler.ListJobEvents)
		jobs.POST("/:job_id/transition", jobHandler.ApplyTransition)
		jobs.POST("/:job_id/dispatch", matchingHandler.DispatchOffers)
		jobs.POST("/:job_id/quote", quoteHandler.CreateDraft)
		jobs.POST("/:job_id/quote/send", quoteHandler.SendQuote)
		jobs.GET("/:job_id/quote", quoteHandler.GetLatestQuote)
		jobs.GET("/:job_id/payments", paymentHandler.ListPayments)
		jobs.GET("/:job_id/payout", payoutHandler.GetPayout)
		jobs.POST("/:job_id/payout/mark-paid", payoutHandler.MarkPaid)
	}

	payments := rg.Group(PathPayments)
	{
		// Gateway confirmations arrive here, at-least-once.
		payments.POST("/webhook", paymentHandler.HandleWebhook)
	}
}
