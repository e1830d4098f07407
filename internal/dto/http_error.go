// File: internal/dto/http_error.go
package dto

// HTTPError is the error body returned by every endpoint.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
