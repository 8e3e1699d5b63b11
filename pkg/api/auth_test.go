package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAPIKey(t *testing.T) {
	// SHA-256 of "spark_test_key", independently computed.
	assert.Equal(t,
		"3bf3b93cf11fade5ca11fdd2d8dae0eb5d02da113d45c132598011fac876e04d",
		hashAPIKey("spark_test_key"))

	// Distinct keys hash apart.
	assert.NotEqual(t, hashAPIKey("a"), hashAPIKey("b"))
}

func TestExtractAPIKey(t *testing.T) {
	e := echo.New()

	newCtx := func(headers map[string]string) *echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/spark/chat", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	assert.Equal(t, "pk_123", extractAPIKey(newCtx(map[string]string{"X-Spark-Key": "pk_123"})))
	assert.Equal(t, "pk_456", extractAPIKey(newCtx(map[string]string{"Authorization": "Bearer pk_456"})))
	assert.Equal(t, "", extractAPIKey(newCtx(map[string]string{"Authorization": "Basic abc"})))
	assert.Equal(t, "", extractAPIKey(newCtx(nil)))

	// X-Spark-Key wins when both are present.
	assert.Equal(t, "pk_123", extractAPIKey(newCtx(map[string]string{
		"X-Spark-Key":   "pk_123",
		"Authorization": "Bearer pk_456",
	})))
}

func TestWidgetAuth_MissingKey(t *testing.T) {
	s := &Server{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/spark/chat", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := s.widgetAuth()(func(c *echo.Context) error {
		t.Fatal("handler must not run without a key")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	s := &Server{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/spark/admin/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := s.adminAuth()(func(c *echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Contains(t, he.Message, "Missing authorization token")
}
