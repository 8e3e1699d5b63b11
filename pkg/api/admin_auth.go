package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/ratelimit"
	"github.com/trykin/spark/pkg/services"
)

// adminVerifier validates identity-provider access tokens against the
// project's JWKS endpoint. The remote key set caches keys in-process
// and refreshes them on unknown-key misses.
type adminVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func newAdminVerifier(supabaseURL string) *adminVerifier {
	issuer := supabaseURL + "/auth/v1"
	keySet := oidc.NewRemoteKeySet(context.Background(), issuer+"/.well-known/jwks.json")
	return &adminVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{
			ClientID:             "authenticated",
			SupportedSigningAlgs: []string{oidc.RS256, oidc.ES256},
		}),
	}
}

// subject verifies the token and returns the account it belongs to.
func (v *adminVerifier) subject(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}
	if token.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return token.Subject, nil
}

// adminAuth verifies the portal's Bearer token and resolves the tenant
// linked to that account.
func (s *Server) adminAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			userID, err := s.adminTokens.subject(c.Request().Context(), strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				s.Logger.Warn("Admin token rejected", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			client, err := s.Clients.GetByUserID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "No Spark client linked to this account")
				}
				return mapServiceError(err)
			}
			if !client.Active {
				return echo.NewHTTPError(http.StatusForbidden, "Client deactivated")
			}

			c.Set(clientContextKey, client)
			return next(c)
		}
	}
}

// adminRateLimit throttles the admin surface per token. The key is a
// hash prefix of the raw Authorization header: stable per user, and
// usable before the token is verified.
func (s *Server) adminRateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := sha256.Sum256([]byte(c.Request().Header.Get("Authorization")))
			key := ratelimit.AdminKey(hex.EncodeToString(h[:])[:16])
			if !s.Limiter.Allow(key, s.cfg.AdminRateLimitRPM) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}
			return next(c)
		}
	}
}
