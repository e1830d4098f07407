// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is one account row. SecretHash is the only persisted representation of
// the secret and is never serialized.
type User struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Handle     string    `db:"handle" json:"handle"`
	Email      string    `db:"email" json:"email"`
	SecretHash string    `db:"secret_hash" json:"-"`
	FirstName  *string   `db:"first_name" json:"first_name,omitempty"`
	LastName   *string   `db:"last_name" json:"last_name,omitempty"`
	Language   string    `db:"language" json:"language"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
