package entities

import "testing"

func TestCanTransition(t *testing.T) {
	t.Run("happy path chain", func(t *testing.T) {
		chain := []JobStatus{
			JobStatusNew,
			JobStatusOfferingContractors,
			JobStatusAwaitingQuote,
			JobStatusQuoteSent,
			JobStatusAwaitingPayment,
			JobStatusConfirmed,
			JobStatusInProgress,
			JobStatusCompleted,
		}
		for i := 0; i < len(chain)-1; i++ {
			if !CanTransition(chain[i], chain[i+1]) {
				t.Fatalf("expected %s -> %s to be allowed", chain[i], chain[i+1])
			}
		}
	})

	t.Run("skip payment when not required", func(t *testing.T) {
		if !CanTransition(JobStatusQuoteSent, JobStatusConfirmed) {
			t.Fatalf("expected quote_sent -> confirmed to be allowed")
		}
	})

	t.Run("illegal jumps", func(t *testing.T) {
		cases := [][2]JobStatus{
			{JobStatusNew, JobStatusAwaitingQuote},
			{JobStatusNew, JobStatusCompleted},
			{JobStatusAwaitingQuote, JobStatusConfirmed},
			{JobStatusConfirmed, JobStatusAwaitingQuote},
			{JobStatusInProgress, JobStatusCancelledByClient},
			{JobStatusCompleted, JobStatusInProgress},
		}
		for _, c := range cases {
			if CanTransition(c[0], c[1]) {
				t.Fatalf("expected %s -> %s to be rejected", c[0], c[1])
			}
		}
	})

	t.Run("client cancel window closes at in_progress", func(t *testing.T) {
		for _, from := range []JobStatus{JobStatusOfferingContractors, JobStatusAwaitingQuote, JobStatusQuoteSent, JobStatusAwaitingPayment, JobStatusConfirmed} {
			if !CanTransition(from, JobStatusCancelledByClient) {
				t.Fatalf("expected %s -> cancelled_by_client to be allowed", from)
			}
		}
		if CanTransition(JobStatusInProgress, JobStatusCancelledByClient) {
			t.Fatalf("expected in_progress -> cancelled_by_client to be rejected")
		}
	})

	t.Run("terminal statuses go nowhere", func(t *testing.T) {
		terminals := []JobStatus{JobStatusCompleted, JobStatusCancelledByClient, JobStatusCancelledInternal, JobStatusNoContractorFound}
		all := []JobStatus{
			JobStatusNew, JobStatusOfferingContractors, JobStatusAwaitingQuote, JobStatusQuoteSent,
			JobStatusAwaitingPayment, JobStatusConfirmed, JobStatusInProgress, JobStatusCompleted,
			JobStatusCancelledByClient, JobStatusCancelledInternal, JobStatusNoContractorFound,
		}
		for _, from := range terminals {
			if !IsTerminal(from) {
				t.Fatalf("expected %s to be terminal", from)
			}
			for _, to := range all {
				if CanTransition(from, to) {
					t.Fatalf("expected no transition out of %s, got %s", from, to)
				}
			}
		}
	})

	t.Run("non-terminal statuses have targets", func(t *testing.T) {
		for _, from := range []JobStatus{JobStatusNew, JobStatusOfferingContractors, JobStatusAwaitingQuote, JobStatusQuoteSent, JobStatusAwaitingPayment, JobStatusConfirmed, JobStatusInProgress} {
			if IsTerminal(from) {
				t.Fatalf("expected %s to be non-terminal", from)
			}
			if len(AllowedTargets(from)) == 0 {
				t.Fatalf("expected targets from %s", from)
			}
		}
	})
}

func TestStatusEventType(t *testing.T) {
	if got := StatusEventType(JobStatusAwaitingQuote); got != "status_awaiting_quote" {
		t.Fatalf("unexpected event type: %s", got)
	}
	if got := StatusEventType(JobStatusNoContractorFound); got != "status_no_contractor_found" {
		t.Fatalf("unexpected event type: %s", got)
	}
}
