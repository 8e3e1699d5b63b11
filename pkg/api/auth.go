package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/services"
)

// Context keys for the authenticated tenant.
const clientContextKey = "spark_client"

// hashAPIKey returns the SHA-256 hex digest stored for a widget key.
// Spark keys are publishable (visible in page source); the hash keeps
// the database from being a key dump, not the key from being seen.
func hashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

// extractAPIKey pulls the widget key from X-Spark-Key or a Bearer
// Authorization header.
func extractAPIKey(c *echo.Context) string {
	if key := c.Request().Header.Get("X-Spark-Key"); key != "" {
		return key
	}
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// widgetAuth resolves the tenant from the publishable API key and
// stores it on the request context.
func (s *Server) widgetAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			key := extractAPIKey(c)
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing API key")
			}

			client, err := s.Clients.GetByAPIKeyHash(c.Request().Context(), hashAPIKey(key))
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key")
				}
				return mapServiceError(err)
			}
			if !client.Active {
				return echo.NewHTTPError(http.StatusForbidden, "Client account is inactive")
			}

			c.Set(clientContextKey, client)
			return next(c)
		}
	}
}

// currentClient returns the tenant resolved by the auth middleware.
func currentClient(c *echo.Context) *ent.Tenant {
	client, _ := c.Get(clientContextKey).(*ent.Tenant)
	return client
}
