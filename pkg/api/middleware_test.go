package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/trykin/spark/pkg/config"
)

func corsTestServer() (*Server, *echo.Echo) {
	s := &Server{cfg: &config.Settings{
		AdminCORSOrigins: "https://app.trykin.ai, https://staging.trykin.ai",
	}}
	e := echo.New()
	e.Use(s.pathCORS())
	e.Use(securityHeaders())
	e.GET("/spark/chat", func(c *echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/spark/admin/me", func(c *echo.Context) error { return c.String(http.StatusOK, "ok") })
	return s, e
}

func TestPathCORS_WidgetWildcard(t *testing.T) {
	_, e := corsTestServer()

	req := httptest.NewRequest(http.MethodGet, "/spark/chat", nil)
	req.Header.Set("Origin", "https://random-customer-site.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"),
		"widget surface never allows credentials")
}

func TestPathCORS_AdminAllowedOrigin(t *testing.T) {
	_, e := corsTestServer()

	req := httptest.NewRequest(http.MethodGet, "/spark/admin/me", nil)
	req.Header.Set("Origin", "https://staging.trykin.ai")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://staging.trykin.ai", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestPathCORS_AdminUnknownOrigin(t *testing.T) {
	_, e := corsTestServer()

	req := httptest.NewRequest(http.MethodGet, "/spark/admin/me", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPathCORS_Preflight(t *testing.T) {
	_, e := corsTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/spark/chat", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	_, e := corsTestServer()

	req := httptest.NewRequest(http.MethodGet, "/spark/chat", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/spark/chat", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "203.0.113.7", clientIP(c))

	req = httptest.NewRequest(http.MethodPost, "/spark/chat", nil)
	req.RemoteAddr = "198.51.100.4:9999"
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "198.51.100.4", clientIP(c))
}
