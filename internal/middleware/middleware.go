package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// Two credential scopes guard the API, replacing storage-level role grants:
// the full-access key may mutate users and write the audit log, the read-only
// key may only verify credentials and read. The full key satisfies read-only
// routes as well.
const (
	FullAccessKeyEnv = "FULL_ACCESS_KEY"
	ReadOnlyKeyEnv   = "READ_ONLY_KEY"

	ContextScopeKey = "scope"

	ScopeFullAccess = "full-access"
	ScopeReadOnly   = "read-only"
)

func extractKey(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing access key")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

func keyMatches(candidate, envName string) bool {
	configured := os.Getenv(envName)
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(configured)) == 1
}

// RequireFullAccess admits only the full-access key.
func RequireFullAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if os.Getenv(FullAccessKeyEnv) == "" {
			return echo.NewHTTPError(http.StatusInternalServerError, "access keys not configured")
		}
		key, err := extractKey(c)
		if err != nil {
			return err
		}
		if !keyMatches(key, FullAccessKeyEnv) {
			return echo.NewHTTPError(http.StatusForbidden, "full-access scope required")
		}
		c.Set(ContextScopeKey, ScopeFullAccess)
		return next(c)
	}
}

// RequireReadOnly admits either key; the full-access key implies read access.
func RequireReadOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if os.Getenv(FullAccessKeyEnv) == "" && os.Getenv(ReadOnlyKeyEnv) == "" {
			return echo.NewHTTPError(http.StatusInternalServerError, "access keys not configured")
		}
		key, err := extractKey(c)
		if err != nil {
			return err
		}
		switch {
		case keyMatches(key, FullAccessKeyEnv):
			c.Set(ContextScopeKey, ScopeFullAccess)
		case keyMatches(key, ReadOnlyKeyEnv):
			c.Set(ContextScopeKey, ScopeReadOnly)
		default:
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access key")
		}
		return next(c)
	}
}
