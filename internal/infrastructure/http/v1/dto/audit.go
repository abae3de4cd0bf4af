package dto

import (
	"encoding/json"
	"time"

	"shopapi/internal/infrastructure/storage/postgres"
)

// AuditEntryResponse is one recorded change for an entity.
type AuditEntryResponse struct {
	ID         int64           `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   int64           `json:"entityId"`
	Action     string          `json:"action"`
	ActorID    int64           `json:"actorId,omitempty"`
	ActorEmail string          `json:"actorEmail,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FromAuditEntry creates response DTO from a stored audit row.
func FromAuditEntry(e *postgres.AuditEntry) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:         e.ID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		ActorID:    e.ActorID,
		ActorEmail: e.ActorEmail,
		Payload:    json.RawMessage(e.Payload),
		CreatedAt:  e.CreatedAt,
	}
}

// FromAuditEntries converts a slice of audit rows.
func FromAuditEntries(entries []*postgres.AuditEntry) []*AuditEntryResponse {
	out := make([]*AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromAuditEntry(e))
	}
	return out
}
