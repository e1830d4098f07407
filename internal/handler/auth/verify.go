// File: internal/handler/auth/verify.go
package auth

import (
	"errors"
	"net/http"

	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"
	"topicmap/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VerifyHandler checks a handle/secret pair and returns the user id.
// @Summary     Verify credentials
// @Description Returns the stable user id when handle and secret match an active account
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       handle formData string true "account handle"
// @Param       secret formData string true "account secret"
// @Success     200 {object} dto.VerifyResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/verify [post]
func VerifyHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.VerifyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		userID, err := service.VerifyCredentials(c.Request().Context(), db, req.Handle, req.Secret)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAccountInactive):
				service.RecordEvent(db, wp, userID, "login denied: account inactive")
			case errors.Is(err, service.ErrInvalidCredentials):
				if userID != uuid.Nil {
					service.RecordEvent(db, wp, userID, "login failed")
				}
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "verification failed"})
			}
			// inactive accounts and bad credentials share one external answer
			// so callers cannot enumerate account state
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		service.RecordEvent(db, wp, userID, "login succeeded")
		return c.JSON(http.StatusOK, dto.VerifyResponse{UserID: userID})
	}
}
