// File: internal/handler/users/get_user.go
package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"topicmap/internal/cache"
	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id uuid.UUID) string { return "user:" + id.String() }

// GetUserHandler returns one account record.
// @Summary     Get a user
// @Description Fetches the account by id; the secret hash is never included
// @Tags        users
// @Produce     json
// @Param       id path string true "user id"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		// read-through: serve the cached response when present, fall back to
		// the store otherwise. Cache failures only cost the shortcut.
		if cached, err := cch.Get(c.Request().Context(), userCacheKey(userID)).Result(); err == nil && cached != "" {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		user, err := store.GetUserByID(c.Request().Context(), db, userID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to fetch user"})
			}
		}

		resp := dto.NewUserResponse(user)
		if body, err := json.Marshal(resp); err == nil {
			cch.Set(c.Request().Context(), userCacheKey(userID), body, userCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
