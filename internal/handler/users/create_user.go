// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"

	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"
	"topicmap/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateUserRequest is the form payload for a new account.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// account email, stored lowercase
	// required: true
	Email string `form:"email" validate:"required,email" example:"alice@example.com"`

	// account secret, hashed before it is persisted
	// required: true
	Secret string `form:"secret" validate:"required" example:"Secret123!"`

	// unique login handle
	// required: true
	Handle string `form:"handle" validate:"required,max=32" example:"alice"`

	FirstName *string `form:"first_name" validate:"omitempty,max=128" example:"Alice"`
	LastName  *string `form:"last_name" validate:"omitempty,max=128" example:"Liddell"`

	// two-letter language code, defaults to en
	Language *string `form:"language" validate:"omitempty,len=2,alpha" example:"en"`
}

// CreateUserHandler registers a new account.
// @Summary     Create a new user
// @Description Creates an account; the secret is hashed before the record is stored
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email      formData string true  "account email"
// @Param       secret     formData string true  "account secret"
// @Param       handle     formData string true  "unique handle (max 32 chars)"
// @Param       first_name formData string false "first name"
// @Param       last_name  formData string false "last name"
// @Param       language   formData string false "two-letter language code"
// @Success     201 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := service.CreateUser(c.Request().Context(), db, service.CreateUserParams{
			Email:     req.Email,
			Secret:    req.Secret,
			Handle:    req.Handle,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Language:  req.Language,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidEmail),
				errors.Is(err, service.ErrInvalidLanguage),
				errors.Is(err, service.ErrInvalidHandle),
				errors.Is(err, service.ErrInvalidSecret):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			case errors.Is(err, store.ErrDuplicateEmail),
				errors.Is(err, store.ErrDuplicateHandle):
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: err.Error()})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
			}
		}

		service.RecordEvent(db, wp, user.ID, "account created")
		return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
	}
}
