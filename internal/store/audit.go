package store

import (
	"context"

	"topicmap/internal/database"
	"topicmap/internal/model"

	"github.com/google/uuid"
)

// AppendAuditEntry inserts one event row with a server-assigned timestamp and
// returns the stored entry. The audit_log table is append-only: no update or
// delete statement for it exists anywhere in this codebase.
func AppendAuditEntry(ctx context.Context, db database.DB, userID uuid.UUID, event string) (*model.AuditEntry, error) {
	entry := &model.AuditEntry{UserID: userID, Event: event}
	row := db.QueryRow(ctx,
		`INSERT INTO audit_log (user_id, event)
		 VALUES ($1, $2)
		 RETURNING id, event_time`,
		userID,
		event,
	)
	if err := row.Scan(&entry.ID, &entry.EventTime); err != nil {
		return nil, mapError("AppendAuditEntry", err)
	}
	return entry, nil
}

// ListAuditEntries returns a user's events oldest first. The secondary sort on
// id keeps the order stable when entries share a timestamp.
func ListAuditEntries(ctx context.Context, db database.DB, userID uuid.UUID, limit, offset int) ([]model.AuditEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, event_time, event
		 FROM audit_log
		 WHERE user_id = $1
		 ORDER BY event_time ASC, id ASC
		 LIMIT $2 OFFSET $3`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, mapError("ListAuditEntries", err)
	}
	defer rows.Close()

	entries := []model.AuditEntry{}
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventTime, &e.Event); err != nil {
			return nil, mapError("ListAuditEntries", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("ListAuditEntries", err)
	}
	return entries, nil
}
