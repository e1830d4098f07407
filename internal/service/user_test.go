package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"topicmap/internal/database"
	"topicmap/internal/model"
	"topicmap/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- fakes ---------- */

// fakeRow serves both the 9-column user selects and the single created_at
// scan of the insert.
type fakeRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 9:
		*dest[0].(*uuid.UUID) = u.ID
		*dest[1].(*string) = u.Handle
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.SecretHash
		*dest[4].(**string) = u.FirstName
		*dest[5].(**string) = u.LastName
		*dest[6].(*string) = u.Language
		*dest[7].(*bool) = u.Active
		*dest[8].(*time.Time) = u.CreatedAt
	case 1:
		*dest[0].(*time.Time) = u.CreatedAt
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- CreateUser ---------- */

func TestCreateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		db := &database.FakeDB{}
		_, err := CreateUser(ctx, db, CreateUserParams{Email: "nope", Secret: "s", Handle: "h"})
		require.ErrorIs(t, err, ErrInvalidEmail)

		_, err = CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: ""})
		require.ErrorIs(t, err, ErrInvalidHandle)

		long := make([]byte, 33)
		for i := range long {
			long[i] = 'x'
		}
		_, err = CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: string(long)})
		require.ErrorIs(t, err, ErrInvalidHandle)

		_, err = CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "", Handle: "h"})
		require.ErrorIs(t, err, ErrInvalidSecret)

		bad := "eng"
		_, err = CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: "h", Language: &bad})
		require.ErrorIs(t, err, ErrInvalidLanguage)
	})

	t.Run("success hashes and defaults", func(t *testing.T) {
		now := time.Now().UTC()
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{user: &model.User{CreatedAt: now}}
			},
		}
		u, err := CreateUser(ctx, db, CreateUserParams{
			Email:  "Alice@Example.COM",
			Secret: "s3cret",
			Handle: "alice",
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, "en", u.Language)
		require.True(t, u.Active)
		require.Equal(t, now, u.CreatedAt)

		// what went to the store is a salted hash, never the plaintext
		storedHash := gotArgs[3].(string)
		require.NotEqual(t, "s3cret", storedHash)
		require.NotContains(t, storedHash, "s3cret")
		require.NoError(t, CompareSecret(storedHash, "s3cret"))
	})

	t.Run("explicit language", func(t *testing.T) {
		lang := "DE"
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &model.User{}}
			},
		}
		u, err := CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: "h", Language: &lang})
		require.NoError(t, err)
		require.Equal(t, "de", u.Language)
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
		db := &database.FakeDB{}
		_, err := CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: "h"})
		require.Error(t, err)
	})

	t.Run("duplicate handle surfaces", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_handle_key"}}
			},
		}
		_, err := CreateUser(ctx, db, CreateUserParams{Email: "a@b.com", Secret: "s", Handle: "h"})
		require.ErrorIs(t, err, store.ErrDuplicateHandle)
	})
}

/* ---------- UpdateProfile ---------- */

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	existing := func() *model.User {
		return &model.User{ID: uid, Handle: "alice", Email: "a@b.com", SecretHash: "h", Language: "en", Active: true}
	}

	t.Run("applies only set fields", func(t *testing.T) {
		var updateArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: existing()}
			},
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				updateArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		first := "Alice"
		inactive := false
		u, err := UpdateProfile(ctx, db, uid, UpdateProfileParams{FirstName: &first, Active: &inactive})
		require.NoError(t, err)
		require.Equal(t, &first, u.FirstName)
		require.False(t, u.Active)
		require.Equal(t, "en", u.Language)
		require.Len(t, updateArgs, 5)
	})

	t.Run("language normalized and validated", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: existing()}
			},
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		lang := "FR"
		u, err := UpdateProfile(ctx, db, uid, UpdateProfileParams{Language: &lang})
		require.NoError(t, err)
		require.Equal(t, "fr", u.Language)

		bad := "x"
		_, err = UpdateProfile(ctx, db, uid, UpdateProfileParams{Language: &bad})
		require.ErrorIs(t, err, ErrInvalidLanguage)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateProfile(ctx, db, uid, UpdateProfileParams{})
		require.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

/* ---------- UpdateSecret / Deactivate ---------- */

func TestUpdateSecret(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("empty secret", func(t *testing.T) {
		require.ErrorIs(t, UpdateSecret(ctx, &database.FakeDB{}, uid, ""), ErrInvalidSecret)
	})

	t.Run("rehashes with fresh salt", func(t *testing.T) {
		var hashes []string
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				hashes = append(hashes, args[0].(string))
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateSecret(ctx, db, uid, "newpass"))
		require.NoError(t, UpdateSecret(ctx, db, uid, "newpass"))
		require.Len(t, hashes, 2)
		require.NotEqual(t, hashes[0], hashes[1])
		require.NoError(t, CompareSecret(hashes[0], "newpass"))
		require.NoError(t, CompareSecret(hashes[1], "newpass"))
		require.Error(t, CompareSecret(hashes[0], "oldpass"))
	})

	t.Run("unknown user", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateSecret(ctx, db, uid, "s"), store.ErrUserNotFound)
	})
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	calls := 0
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			calls++
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, Deactivate(ctx, db, uid))
	require.NoError(t, Deactivate(ctx, db, uid))
	require.Equal(t, 2, calls)

	missing := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	require.ErrorIs(t, Deactivate(ctx, missing, uid), store.ErrUserNotFound)
}
