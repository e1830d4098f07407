package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserNotFound is returned when no row matches the given id or handle.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert or update collides with the
	// unique constraint on users.email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateHandle is the same for users.handle.
	ErrDuplicateHandle = errors.New("handle already taken")
	// ErrStorageUnavailable wraps any other persistence failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

const (
	uniqueViolationCode  = "23505"
	emailConstraintName  = "users_email_key"
	handleConstraintName = "users_handle_key"
)

// mapError translates driver errors into the store's sentinel errors. Unique
// violations are resolved by constraint name so concurrent duplicate inserts
// surface as ErrDuplicateEmail/ErrDuplicateHandle rather than a raw pg error.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case emailConstraintName:
			return ErrDuplicateEmail
		case handleConstraintName:
			return ErrDuplicateHandle
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
}
