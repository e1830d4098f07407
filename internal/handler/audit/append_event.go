// File: internal/handler/audit/append_event.go
package audit

import (
	"errors"
	"net/http"

	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AppendEventRequest is the form payload for one audit entry.
// swagger:model AppendEventRequest
type AppendEventRequest struct {
	// event description, at most 1024 characters
	// required: true
	Event string `form:"event" validate:"required" example:"login"`
}

// AppendEventHandler records one audit event for a user.
// @Summary     Append an audit event
// @Description Inserts an immutable event row with a server-assigned timestamp; descriptions over 1024 characters are rejected
// @Tags        audit
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id    path     string true "user id"
// @Param       event formData string true "event description"
// @Success     201 {object} dto.AuditEntryResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id}/events [post]
func AppendEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}
		var req AppendEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		entry, err := service.AppendEvent(c.Request().Context(), db, userID, req.Event)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEventTooLong):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			case errors.Is(err, store.ErrStorageUnavailable):
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to append event"})
			}
		}
		return c.JSON(http.StatusCreated, dto.NewAuditEntryResponse(*entry))
	}
}
