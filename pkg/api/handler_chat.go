package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/ratelimit"
	"github.com/trykin/spark/pkg/services"
	"github.com/trykin/spark/pkg/spark"
)

const maxMessageLength = 4000

// ChatRequest is the request body for POST /spark/chat.
type ChatRequest struct {
	Message      string `json:"message"`
	SessionToken string `json:"session_token"`
	Fingerprint  string `json:"fingerprint"`
}

// chatHandler handles POST /spark/chat: resolve or create the session,
// then stream the turn as server-sent events.
func (s *Server) chatHandler(c *echo.Context) error {
	client := currentClient(c)
	ip := clientIP(c)

	if !s.Limiter.Allow(ratelimit.Key(client.ID, ip), client.RateLimitRpm) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "message is too long")
	}

	// Resolve the session. A token that doesn't check out — unknown,
	// expired, or bound to another IP — silently gets a fresh session.
	var conv *ent.Conversation
	var err error
	if req.SessionToken != "" {
		conv, err = s.Sessions.Resolve(c.Request().Context(), req.SessionToken, ip)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return mapServiceError(err)
		}
	}
	if conv == nil {
		conv, err = s.Sessions.Create(c.Request().Context(), client.ID, ip, req.Fingerprint)
		if err != nil {
			return mapServiceError(err)
		}
	}

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	out := newSSEWriter(c.Response())
	if err := out.writeEvent(spark.EventSession, map[string]interface{}{
		"session_token":   conv.SessionToken,
		"turns_remaining": client.MaxTurns - conv.TurnCount,
		"conversation_id": conv.ID,
	}); err != nil {
		return nil
	}

	events := s.Orchestrator.ProcessMessage(c.Request().Context(), spark.TurnInput{
		Message:           req.Message,
		ClientID:          client.ID,
		ConversationID:    conv.ID,
		SettlingConfig:    client.SettlingConfig,
		MaxTurns:          client.MaxTurns,
		ClientOrientation: derefStr(client.ClientOrientation),
	})
	for ev := range events {
		if err := out.writeEvent(ev.Name, ev.Data); err != nil {
			// Visitor went away; the orchestrator notices via ctx.
			s.Logger.Debug("SSE write failed, client gone", "conversation_id", conv.ID)
			return nil
		}
	}
	return nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
