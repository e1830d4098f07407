// File: internal/dto/audit_entry_response.go
package dto

import (
	"time"

	"topicmap/internal/model"

	"github.com/google/uuid"
)

// swagger:model dto.AuditEntryResponse
type AuditEntryResponse struct {
	ID        int64     `json:"id" example:"17"`
	UserID    uuid.UUID `json:"user_id" example:"5d1f0db6-6f0c-4a41-8fd8-2e64c63d6a10"`
	EventTime time.Time `json:"event_time" example:"2025-05-01T15:04:05Z"`
	Event     string    `json:"event" example:"login succeeded"`
}

func NewAuditEntryResponse(e model.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		EventTime: e.EventTime,
		Event:     e.Event,
	}
}
