// File: internal/dto/verify_request.go
package dto

// swagger:model dto.VerifyRequest
type VerifyRequest struct {
	Handle string `form:"handle" validate:"required,max=32" example:"alice"`
	Secret string `form:"secret" validate:"required" example:"Secret123!"`
}
