package store

import (
	"context"

	"topicmap/internal/database"
	"topicmap/internal/model"

	"github.com/google/uuid"
)

const userColumns = `id, handle, email, secret_hash, first_name, last_name, language, active, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Handle,
		&u.Email,
		&u.SecretHash,
		&u.FirstName,
		&u.LastName,
		&u.Language,
		&u.Active,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("GetUserByID", err)
	}
	return u, nil
}

func GetUserByHandle(ctx context.Context, db database.DB, handle string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE handle = $1`,
		handle,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("GetUserByHandle", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("GetUserByEmail", err)
	}
	return u, nil
}

// CreateUser inserts the row and fills in the server-assigned created_at.
// Uniqueness races on handle/email resolve here: the loser of a concurrent
// insert gets ErrDuplicateHandle/ErrDuplicateEmail from the constraint.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, handle, email, secret_hash, first_name, last_name, language, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		u.ID,
		u.Handle,
		u.Email,
		u.SecretHash,
		u.FirstName,
		u.LastName,
		u.Language,
		u.Active,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, mapError("CreateUser", err)
	}
	return u, nil
}

// UpdateUserProfile writes the mutable display attributes. It never touches
// secret_hash; the secret column has exactly one writer, UpdateUserSecretHash.
func UpdateUserProfile(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, language = $3, active = $4
		 WHERE id = $5`,
		u.FirstName,
		u.LastName,
		u.Language,
		u.Active,
		u.ID,
	)
	if err != nil {
		return mapError("UpdateUserProfile", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateUserSecretHash overwrites secret_hash. The previous hash is gone after
// this; callers must pass a value that has already been through the hash step.
func UpdateUserSecretHash(ctx context.Context, db database.DB, userID uuid.UUID, secretHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET secret_hash = $1 WHERE id = $2`,
		secretHash,
		userID,
	)
	if err != nil {
		return mapError("UpdateUserSecretHash", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeactivateUser flips active to false. Deactivating an already-inactive user
// is a no-op that still succeeds, which makes the operation idempotent.
func DeactivateUser(ctx context.Context, db database.DB, userID uuid.UUID) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET active = FALSE WHERE id = $1`,
		userID,
	)
	if err != nil {
		return mapError("DeactivateUser", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
