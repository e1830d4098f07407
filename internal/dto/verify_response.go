// File: internal/dto/verify_response.go
package dto

import "github.com/google/uuid"

// VerifyResponse returns the stable user id on a successful credential check.
// swagger:model dto.VerifyResponse
type VerifyResponse struct {
	UserID uuid.UUID `json:"user_id" example:"5d1f0db6-6f0c-4a41-8fd8-2e64c63d6a10"`
}
