// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"topicmap/internal/cache"
	"topicmap/internal/database"
	"topicmap/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports service health.
// @Summary     Health check
// @Description Returns pong after probing the database and the cache
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := cch.Set(c.Request().Context(), "healthcheck", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
