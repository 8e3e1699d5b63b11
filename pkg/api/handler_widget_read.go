package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/services"
)

// queryInt parses an integer query parameter with a default.
func queryInt(c *echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// widgetConversationsHandler handles GET /spark/conversations, the
// key-authenticated conversation listing.
func (s *Server) widgetConversationsHandler(c *echo.Context) error {
	client := currentClient(c)

	convs, _, err := s.Sessions.ListConversations(c.Request().Context(), client.ID, services.ConversationFilter{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]ConversationSummary, len(convs))
	for i, conv := range convs {
		items[i] = conversationSummary(conv)
	}
	return c.JSON(http.StatusOK, items)
}

// widgetMessagesHandler handles GET /spark/conversations/:id/messages.
func (s *Server) widgetMessagesHandler(c *echo.Context) error {
	client := currentClient(c)
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	_, msgs, err := s.Sessions.Transcript(c.Request().Context(), client.ID, conversationID)
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]MessageOut, len(msgs))
	for i, m := range msgs {
		items[i] = messageOut(m)
	}
	return c.JSON(http.StatusOK, items)
}

// widgetLeadsHandler handles GET /spark/leads.
func (s *Server) widgetLeadsHandler(c *echo.Context) error {
	client := currentClient(c)

	leads, _, err := s.Leads.List(c.Request().Context(), client.ID, services.LeadFilter{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]LeadOut, len(leads))
	for i, l := range leads {
		items[i] = leadOut(l)
	}
	return c.JSON(http.StatusOK, items)
}
