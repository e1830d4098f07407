// File: internal/handler/users/deactivate_user.go
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

// DeactivateUserHandler disables an account without deleting it.
// @Summary     Deactivate a user
// @Description Sets active=false; the record and its audit trail remain. Repeat calls succeed.
// @Tags        users
// @Produce     json
// @Param       id path string true "user id"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeactivateUserHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		if err := service.Deactivate(c.Request().Context(), db, userID); err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to deactivate user"})
			}
		}

		cch.Del(c.Request().Context(), userCacheKey(userID))
		service.RecordEvent(db, wp, userID, "account deactivated")
		return c.NoContent(http.StatusNoContent)
	}
}
