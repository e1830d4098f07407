// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"topicmap/internal/cache"
	"topicmap/internal/database"
	"topicmap/internal/handler"
	"topicmap/internal/handler/audit"
	"topicmap/internal/handler/auth"
	"topicmap/internal/handler/users"
	"topicmap/internal/middleware"
	"topicmap/internal/worker"
)

// Setup registers all routes. The scope middleware per route mirrors the two
// storage roles of the schema: read-only callers can verify credentials and
// read, everything that writes needs the full-access key.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireReadOnly)

	// credential verification is a read
	api.POST("/auth/verify", auth.VerifyHandler(db, wp), middleware.RequireReadOnly)

	api.POST("/users", users.CreateUserHandler(db, wp), middleware.RequireFullAccess)
	api.GET("/users/:id", users.GetUserHandler(db, cch), middleware.RequireReadOnly)
	api.PUT("/users/:id", users.UpdateUserHandler(db, cch), middleware.RequireFullAccess)
	api.PATCH("/users/:id/secret", users.UpdateSecretHandler(db, cch, wp), middleware.RequireFullAccess)
	api.DELETE("/users/:id", users.DeactivateUserHandler(db, cch, wp), middleware.RequireFullAccess)

	api.POST("/users/:id/events", audit.AppendEventHandler(db), middleware.RequireFullAccess)
	api.GET("/users/:id/events", audit.ListEventsHandler(db), middleware.RequireReadOnly)
}
