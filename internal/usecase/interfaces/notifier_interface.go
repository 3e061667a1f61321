package interfaces

import (
	"context"

	"probridge/internal/domain/entities"
)

// INotifier abstracts notification delivery. Fire-and-forget from the
// orchestrator's perspective: a notify failure never rolls back the state
// transition that triggered it (handlers log and move on).
type INotifier interface {
	Notify(ctx context.Context, recipientKind entities.ActorKind, recipientID, templateID string, data map[string]any) error
}
