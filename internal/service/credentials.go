package service

import (
	"context"
	"errors"

	"topicmap/internal/database"
	"topicmap/internal/store"

	"github.com/google/uuid"
)

// dummySecretHash is compared against when the handle does not exist, so the
// unknown-handle path costs one bcrypt comparison like every other failure.
// It never grants access: that code path always returns ErrInvalidCredentials.
const dummySecretHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// VerifyCredentials looks the user up by handle and checks the candidate
// secret against the stored hash.
//
// On success the user id is returned with a nil error. Unknown handle and
// wrong secret both fail with ErrInvalidCredentials. A correct secret on a
// deactivated account fails with ErrAccountInactive; in that case and in the
// wrong-secret case the user id is still returned next to the error so
// internal callers can audit the attempt, but nothing derived from it may
// reach the originating client.
func VerifyCredentials(ctx context.Context, db database.DB, handle, candidateSecret string) (uuid.UUID, error) {
	user, err := store.GetUserByHandle(ctx, db, handle)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = CompareSecret(dummySecretHash, candidateSecret)
			return uuid.Nil, ErrInvalidCredentials
		}
		return uuid.Nil, err
	}
	if err := CompareSecret(user.SecretHash, candidateSecret); err != nil {
		return user.ID, ErrInvalidCredentials
	}
	if !user.Active {
		return user.ID, ErrAccountInactive
	}
	return user.ID, nil
}
