// File: internal/handler/audit/list_events.go
package audit

import (
	"errors"
	"net/http"
	"strconv"

	"topicmap/internal/database"
	"topicmap/internal/dto"
	"topicmap/internal/service"
	"topicmap/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// ListEventsHandler returns a user's audit trail, oldest first.
// @Summary     List audit events
// @Description Returns the user's events ordered oldest first, paginated with limit/offset
// @Tags        audit
// @Produce     json
// @Param       id     path  string true  "user id"
// @Param       limit  query int    false "page size (default 100, max 1000)"
// @Param       offset query int    false "rows to skip"
// @Success     200 {array} dto.AuditEntryResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id}/events [get]
func ListEventsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}
		limit, err := queryInt(c, "limit")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid limit"})
		}
		offset, err := queryInt(c, "offset")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid offset"})
		}

		entries, err := service.ListEvents(c.Request().Context(), db, userID, limit, offset)
		if err != nil {
			if errors.Is(err, store.ErrStorageUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "storage unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list events"})
		}

		resp := make([]dto.AuditEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, dto.NewAuditEntryResponse(e))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
