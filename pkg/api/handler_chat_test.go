package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/ratelimit"
)

func chatTestContext(t *testing.T, body string) (*Server, *echo.Context) {
	t.Helper()
	s := &Server{}
	s.Limiter = ratelimit.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/spark/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(clientContextKey, &ent.Tenant{ID: "client-a", RateLimitRpm: 30, MaxTurns: 20})
	return s, c
}

func TestChatHandler_RequiresMessage(t *testing.T) {
	s, c := chatTestContext(t, `{"message": ""}`)

	err := s.chatHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	assert.Contains(t, he.Message, "message is required")
}

func TestChatHandler_RejectsOversizedMessage(t *testing.T) {
	big := strings.Repeat("a", maxMessageLength+1)
	s, c := chatTestContext(t, `{"message": "`+big+`"}`)

	err := s.chatHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}

func TestChatHandler_RateLimited(t *testing.T) {
	s, c := chatTestContext(t, `{"message": "hello"}`)

	// Exhaust the tenant's window for this IP.
	client := currentClient(c)
	for i := 0; i < client.RateLimitRpm; i++ {
		require.True(t, s.Limiter.Allow(ratelimit.Key(client.ID, clientIP(c)), client.RateLimitRpm))
	}

	err := s.chatHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
}
