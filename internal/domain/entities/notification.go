package entities

import "time"

// Notification is an in-app message addressed to a client, contractor or
// operator. Delivery is append-only; reads flip the read_at marker.
type Notification struct {
	ID            string         `json:"id"`
	RecipientKind ActorKind      `json:"recipient_kind"`
	RecipientID   string         `json:"recipient_id"`
	TemplateID    string         `json:"template_id"`
	Data          map[string]any `json:"data,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ReadAt        *time.Time     `json:"read_at,omitempty"`
}
