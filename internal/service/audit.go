package service

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"topicmap/internal/database"
	"topicmap/internal/model"
	"topicmap/internal/store"
	"topicmap/internal/worker"

	"github.com/google/uuid"
)

const (
	// maxEventLen matches the audit_log.event column. Longer descriptions are
	// rejected with ErrEventTooLong rather than truncated, so the log never
	// holds a silently shortened record.
	maxEventLen = 1024

	defaultListLimit = 100
	maxListLimit     = 1000

	recordTimeout = 5 * time.Second
)

// AppendEvent writes one audit row for the user with a server-assigned
// timestamp. The user id is a soft reference; no existence check is made, so
// events can still be recorded for accounts in any lifecycle state.
func AppendEvent(ctx context.Context, db database.DB, userID uuid.UUID, event string) (*model.AuditEntry, error) {
	if utf8.RuneCountInString(event) > maxEventLen {
		return nil, ErrEventTooLong
	}
	return store.AppendAuditEntry(ctx, db, userID, event)
}

// ListEvents returns the user's audit entries oldest first. limit<=0 falls
// back to a default page size and is capped at maxListLimit; a negative
// offset reads from the start.
func ListEvents(ctx context.Context, db database.DB, userID uuid.UUID, limit, offset int) ([]model.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return store.ListAuditEntries(ctx, db, userID, limit, offset)
}

var logPrintf = log.Printf

// RecordEvent appends an audit entry asynchronously through the worker pool.
// Used for event-driven entries (account created, login attempts,
// deactivation) where the request has already been answered; failures are
// logged, never surfaced to the original caller.
func RecordEvent(db database.DB, wp worker.Pool, userID uuid.UUID, event string) {
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if _, err := AppendEvent(ctx, db, userID, event); err != nil {
			logPrintf("audit: append %q for user %s failed: %v", event, userID, err)
		}
	})
}
