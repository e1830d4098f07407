// File: internal/handler/users/update_user.go
package users

import (
	"errors"
	"net/http"

	"topicmap/internal/cache"
	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UpdateUserRequest carries the mutable display attributes. Absent fields are
// left unchanged. The secret has its own endpoint and is not accepted here.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FirstName *string `form:"first_name" validate:"omitempty,max=128" example:"Alice"`
	LastName  *string `form:"last_name" validate:"omitempty,max=128" example:"Liddell"`
	Language  *string `form:"language" validate:"omitempty,len=2,alpha" example:"de"`
	Active    *bool   `form:"active" example:"true"`
}

// UpdateUserHandler updates display attributes of an account.
// @Summary     Update a user
// @Description Applies the supplied fields; the secret hash cannot be changed here
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id         path     string true  "user id"
// @Param       first_name formData string false "first name"
// @Param       last_name  formData string false "last name"
// @Param       language   formData string false "two-letter language code"
// @Param       active     formData boolean false "account enabled"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}
		var req UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := service.UpdateProfile(c.Request().Context(), db, userID, service.UpdateProfileParams{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Language:  req.Language,
			Active:    req.Active,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidLanguage):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			case errors.Is(err, store.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update user"})
			}
		}

		cch.Del(c.Request().Context(), userCacheKey(userID))
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
