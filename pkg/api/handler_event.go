package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// EventRequest is the request body for POST /spark/event.
type EventRequest struct {
	ConversationID string                 `json:"conversation_id"`
	EventType      string                 `json:"event_type"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// eventHandler handles POST /spark/event, the widget's own analytics
// beacons (open, close, greeting shown).
func (s *Server) eventHandler(c *echo.Context) error {
	client := currentClient(c)

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.EventType == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "event_type is required")
	}

	if err := s.Events.Record(c.Request().Context(), client.ID, req.ConversationID, req.EventType, req.Metadata); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "recorded"})
}
