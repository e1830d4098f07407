package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"topicmap/internal/database"
	"topicmap/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeAuditRow struct {
	scanErr error
	entry   *model.AuditEntry
}

func (r *fakeAuditRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int64) = r.entry.ID
	*dest[1].(*time.Time) = r.entry.EventTime
	return nil
}

// fakeAuditRows implements pgx.Rows over a fixed slice.
type fakeAuditRows struct {
	entries []model.AuditEntry
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeAuditRows) Close()                                       {}
func (r *fakeAuditRows) Err() error                                   { return r.rowsErr }
func (r *fakeAuditRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeAuditRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeAuditRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeAuditRows) RawValues() [][]byte                          { return nil }
func (r *fakeAuditRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeAuditRows) Next() bool {
	if r.idx >= len(r.entries) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeAuditRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	e := r.entries[r.idx-1]
	*dest[0].(*int64) = e.ID
	*dest[1].(*uuid.UUID) = e.UserID
	*dest[2].(*time.Time) = e.EventTime
	*dest[3].(*string) = e.Event
	return nil
}

func TestAppendAuditEntry(t *testing.T) {
	now := time.Now().UTC()
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeAuditRow{entry: &model.AuditEntry{ID: 3, EventTime: now}}
			},
		}
		entry, err := AppendAuditEntry(context.Background(), db, uid, "login")
		require.NoError(t, err)
		require.EqualValues(t, 3, entry.ID)
		require.Equal(t, uid, entry.UserID)
		require.Equal(t, "login", entry.Event)
		require.Equal(t, now, entry.EventTime)
		require.Equal(t, []any{uid, "login"}, gotArgs)
	})

	t.Run("storage failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAuditRow{scanErr: errors.New("down")}
			},
		}
		_, err := AppendAuditEntry(context.Background(), db, uid, "login")
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestListAuditEntries(t *testing.T) {
	now := time.Now().UTC()
	uid := uuid.New()
	sample := []model.AuditEntry{
		{ID: 1, UserID: uid, EventTime: now, Event: "user created"},
		{ID: 2, UserID: uid, EventTime: now.Add(time.Minute), Event: "login succeeded"},
	}

	t.Run("success oldest first", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				return &fakeAuditRows{entries: sample}, nil
			},
		}
		entries, err := ListAuditEntries(context.Background(), db, uid, 100, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "user created", entries[0].Event)
		require.True(t, entries[0].EventTime.Before(entries[1].EventTime))
		require.Equal(t, []any{uid, 100, 0}, gotArgs)
	})

	t.Run("empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeAuditRows{}, nil
			},
		}
		entries, err := ListAuditEntries(context.Background(), db, uid, 100, 0)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("query failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListAuditEntries(context.Background(), db, uid, 100, 0)
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("scan failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeAuditRows{entries: sample, scanErr: errors.New("bad row")}, nil
			},
		}
		_, err := ListAuditEntries(context.Background(), db, uid, 100, 0)
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeAuditRows{rowsErr: errors.New("iter")}, nil
			},
		}
		_, err := ListAuditEntries(context.Background(), db, uid, 100, 0)
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
