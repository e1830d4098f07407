// File: internal/dto/user_response.go
package dto

import (
	"time"

	"topicmap/internal/model"

	"github.com/google/uuid"
)

// UserResponse is the externally visible account record. It deliberately has
// no field for the secret hash.
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"5d1f0db6-6f0c-4a41-8fd8-2e64c63d6a10"`
	Handle    string    `json:"handle" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	FirstName *string   `json:"first_name,omitempty" example:"Alice"`
	LastName  *string   `json:"last_name,omitempty" example:"Liddell"`
	Language  string    `json:"language" example:"en"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Handle:    u.Handle,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Language:  u.Language,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
