package service

import (
	"context"
	"regexp"
	"strings"

	"topicmap/internal/database"
	"topicmap/internal/model"
	"topicmap/internal/store"

	"github.com/google/uuid"
)

const (
	maxHandleLen    = 32
	defaultLanguage = "en"
)

// Minimal local@domain.tld shape; anything stricter belongs to the mail
// system, not this store.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var newUUID = uuid.New

// CreateUserParams carries the caller-supplied fields for a new account.
// Optional fields are nil when absent.
type CreateUserParams struct {
	Email     string
	Secret    string
	Handle    string
	FirstName *string
	LastName  *string
	Language  *string
}

func validLanguage(lang string) bool {
	if len(lang) != 2 {
		return false
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// CreateUser validates the fields, hashes the secret and inserts the record.
// The plaintext secret is not retained anywhere past the hash call, and this
// function together with UpdateSecret are the only writers of the secret
// column. The generated user id is immutable for the life of the account.
func CreateUser(ctx context.Context, db database.DB, p CreateUserParams) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if p.Handle == "" || len(p.Handle) > maxHandleLen {
		return nil, ErrInvalidHandle
	}
	if p.Secret == "" {
		return nil, ErrInvalidSecret
	}
	language := defaultLanguage
	if p.Language != nil {
		language = strings.ToLower(*p.Language)
		if !validLanguage(language) {
			return nil, ErrInvalidLanguage
		}
	}

	hash, err := HashSecret(p.Secret)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:         newUUID(),
		Handle:     p.Handle,
		Email:      email,
		SecretHash: hash,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Language:   language,
		Active:     true,
	}
	return store.CreateUser(ctx, db, user)
}

// UpdateProfileParams lists the mutable display attributes. nil means leave
// the field unchanged. The secret is deliberately absent: profile updates can
// never touch the hash, so an already-hashed value is never re-hashed.
type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Language  *string
	Active    *bool
}

// UpdateProfile applies the non-nil fields to the user's row and returns the
// updated record.
func UpdateProfile(ctx context.Context, db database.DB, userID uuid.UUID, p UpdateProfileParams) (*model.User, error) {
	user, err := store.GetUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	if p.FirstName != nil {
		user.FirstName = p.FirstName
	}
	if p.LastName != nil {
		user.LastName = p.LastName
	}
	if p.Language != nil {
		language := strings.ToLower(*p.Language)
		if !validLanguage(language) {
			return nil, ErrInvalidLanguage
		}
		user.Language = language
	}
	if p.Active != nil {
		user.Active = *p.Active
	}
	if err := store.UpdateUserProfile(ctx, db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSecret replaces the stored hash with one computed from newSecret and
// a fresh salt. The previous hash is unrecoverable afterwards.
func UpdateSecret(ctx context.Context, db database.DB, userID uuid.UUID, newSecret string) error {
	if newSecret == "" {
		return ErrInvalidSecret
	}
	hash, err := HashSecret(newSecret)
	if err != nil {
		return err
	}
	return store.UpdateUserSecretHash(ctx, db, userID, hash)
}

// Deactivate disables the account without removing the row, keeping audit
// references valid. Repeat calls succeed.
func Deactivate(ctx context.Context, db database.DB, userID uuid.UUID) error {
	return store.DeactivateUser(ctx, db, userID)
}
