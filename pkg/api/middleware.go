package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// pathCORS applies different CORS policies by path. The widget embeds
// on arbitrary sites, so its endpoints answer any origin without
// credentials; the admin portal is a fixed set of origins with
// credentials.
func (s *Server) pathCORS() echo.MiddlewareFunc {
	adminOrigins := map[string]struct{}{}
	for _, o := range strings.Split(s.cfg.AdminCORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			adminOrigins[o] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			h := c.Response().Header()

			if strings.HasPrefix(c.Request().URL.Path, "/spark/admin") {
				if _, ok := adminOrigins[origin]; ok {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Credentials", "true")
					h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
					h.Set("Access-Control-Max-Age", "86400")
					h.Set("Vary", "Origin")
				}
			} else {
				h.Set("Access-Control-Allow-Origin", "*")
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "X-Spark-Key, Authorization, Content-Type")
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// clientIP extracts the visitor IP, trusting the first X-Forwarded-For
// entry behind the proxy.
func clientIP(c *echo.Context) string {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	return c.RealIP()
}
