// File: internal/model/audit_entry.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only row of the account event log.
type AuditEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventTime time.Time `db:"event_time" json:"event_time"`
	Event     string    `db:"event" json:"event"`
}
