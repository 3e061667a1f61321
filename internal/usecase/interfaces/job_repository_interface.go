package interfaces

import (
	"context"
	"errors"
	"time"

	"probridge/internal/domain/entities"
)

// ErrConditionFailed is returned by conditional writes whose guard did not
// hold (lost race, duplicate create, or missing record). Callers that need
// to distinguish re-read the record and decide.
var ErrConditionFailed = errors.New("conditional write failed")

// StatusStamps carries the timestamp fields a transition sets alongside the
// status flip. Nil fields are left untouched.
type StatusStamps struct {
	AcceptedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The orchestrator requires exactly one capability beyond point reads: a
// conditional update ("change job X only if its status is still S"). Every
// status mutation goes through UpdateStatus or AssignContractor; there is no
// unconditional write path for a job's status.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)

	// UpdateStatus flips status from expected to target in one conditional
	// write, stamping updated_at and any provided timestamps. It returns
	// ErrConditionFailed when the job is missing or its status is no longer
	// expected.
	UpdateStatus(ctx context.Context, id string, expected, target entities.JobStatus, stamps StatusStamps) (entities.Job, error)

	// AssignContractor sets the assigned contractor and moves the job to
	// awaiting_quote, but only while the job is still offering_contractors
	// with no contractor assigned. Exactly one racing caller succeeds; the
	// rest get ErrConditionFailed.
	AssignContractor(ctx context.Context, id, contractorID string, acceptedAt time.Time) (entities.Job, error)
}
