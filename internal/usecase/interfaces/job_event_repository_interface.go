package interfaces

import (
	"context"

	"probridge/internal/domain/entities"
)

// IJobEventRepository abstracts the append-only audit log.

type IJobEventRepository interface {
	Append(ctx context.Context, ev entities.JobEvent) error
	ListByJobID(ctx context.Context, jobID string) ([]entities.JobEvent, error)
}
