// File: internal/handler/users/update_secret.go
package users

import (
	"errors"
	"net/http"

	"topicmap/internal/cache"
	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"
	"topicmap/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UpdateSecretRequest carries only the new plaintext secret; it exists solely
// in this request's lifetime and is replaced by a fresh salted hash.
// swagger:model UpdateSecretRequest
type UpdateSecretRequest struct {
	// required: true
	Secret string `form:"secret" validate:"required" example:"NewSecret456!"`
}

// UpdateSecretHandler replaces an account's secret.
// @Summary     Update a user's secret
// @Description Re-hashes with a fresh salt; the previous hash is unrecoverable
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id     path     string true "user id"
// @Param       secret formData string true "new secret"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id}/secret [patch]
func UpdateSecretHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}
		var req UpdateSecretRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if err := service.UpdateSecret(c.Request().Context(), db, userID, req.Secret); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidSecret):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			case errors.Is(err, store.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update secret"})
			}
		}

		cch.Del(c.Request().Context(), userCacheKey(userID))
		service.RecordEvent(db, wp, userID, "secret updated")
		return c.NoContent(http.StatusNoContent)
	}
}
