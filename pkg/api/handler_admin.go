package api

import (
	"encoding/json"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/services"
)

// AdminProfile is the tenant profile shown in the portal.
type AdminProfile struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Slug           string                 `json:"slug"`
	Active         bool                   `json:"active"`
	MaxTurns       int                    `json:"max_turns"`
	RateLimitRPM   int                    `json:"rate_limit_rpm"`
	SettlingConfig map[string]interface{} `json:"settling_config"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ConversationDetail is the full admin view of one conversation.
type ConversationDetail struct {
	ConversationSummary
	ClientID string       `json:"client_id"`
	Messages []MessageOut `json:"messages"`
	Lead     *LeadOut     `json:"lead"`
}

// queryTime parses a date filter, accepting RFC3339 or a bare date.
// Invalid values are a 400, not silently ignored.
func queryTime(c *echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": must be RFC3339 or YYYY-MM-DD")
}

// adminProfileHandler handles GET /spark/admin/me.
func (s *Server) adminProfileHandler(c *echo.Context) error {
	client := currentClient(c)

	// Round-trip the typed config through JSON so the portal sees the
	// same keys it writes.
	var cfg map[string]interface{}
	if raw, err := json.Marshal(client.SettlingConfig); err == nil {
		_ = json.Unmarshal(raw, &cfg)
	}

	return c.JSON(http.StatusOK, AdminProfile{
		ID:             client.ID,
		Name:           client.Name,
		Slug:           client.Slug,
		Active:         client.Active,
		MaxTurns:       client.MaxTurns,
		RateLimitRPM:   client.RateLimitRpm,
		SettlingConfig: cfg,
		CreatedAt:      client.CreatedAt,
	})
}

// adminSettlingConfigHandler handles PUT /spark/admin/me/settling-config.
// The body is the full settling_config object; unknown keys are a 422.
func (s *Server) adminSettlingConfigHandler(c *echo.Context) error {
	client := currentClient(c)

	var raw json.RawMessage
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.Clients.UpdateSettlingConfig(c.Request().Context(), client.ID, raw)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "updated",
		"settling_config": updated.SettlingConfig,
	})
}

// adminConversationsHandler handles GET /spark/admin/conversations.
func (s *Server) adminConversationsHandler(c *echo.Context) error {
	client := currentClient(c)

	dateFrom, err := queryTime(c, "date_from")
	if err != nil {
		return err
	}
	dateTo, err := queryTime(c, "date_to")
	if err != nil {
		return err
	}

	filter := services.ConversationFilter{
		Outcome:  c.QueryParam("outcome"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}

	convs, total, err := s.Sessions.ListConversations(c.Request().Context(), client.ID, filter)
	if err != nil {
		return mapServiceError(err)
	}

	ids := make([]string, len(convs))
	for i, conv := range convs {
		ids[i] = conv.ID
	}
	previews, err := s.Sessions.FirstUserMessagePreviews(c.Request().Context(), ids)
	if err != nil {
		s.Logger.Warn("Failed to fetch message previews", "error", err)
		previews = map[string]string{}
	}

	items := make([]ConversationSummary, len(convs))
	for i, conv := range convs {
		item := conversationSummary(conv)
		if preview, ok := previews[conv.ID]; ok {
			item.FirstMessagePreview = &preview
		}
		items[i] = item
	}

	return c.JSON(http.StatusOK, Paginated{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// adminConversationDetailHandler handles GET /spark/admin/conversations/:id.
func (s *Server) adminConversationDetailHandler(c *echo.Context) error {
	client := currentClient(c)
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	conv, msgs, err := s.Sessions.Transcript(c.Request().Context(), client.ID, conversationID)
	if err != nil {
		return mapServiceError(err)
	}

	detail := ConversationDetail{
		ConversationSummary: conversationSummary(conv),
		ClientID:            conv.ClientID,
		Messages:            make([]MessageOut, len(msgs)),
	}
	for i, m := range msgs {
		detail.Messages[i] = messageOut(m)
	}

	if lead, err := s.Leads.ByConversation(c.Request().Context(), conversationID); err == nil {
		out := leadOut(lead)
		detail.Lead = &out
	}

	return c.JSON(http.StatusOK, detail)
}

// adminLeadsHandler handles GET /spark/admin/leads.
func (s *Server) adminLeadsHandler(c *echo.Context) error {
	client := currentClient(c)

	dateFrom, err := queryTime(c, "date_from")
	if err != nil {
		return err
	}
	dateTo, err := queryTime(c, "date_to")
	if err != nil {
		return err
	}

	filter := services.LeadFilter{
		Status:   c.QueryParam("status"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}

	leads, total, err := s.Leads.List(c.Request().Context(), client.ID, filter)
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]LeadOut, len(leads))
	for i, l := range leads {
		items[i] = leadOut(l)
	}
	return c.JSON(http.StatusOK, Paginated{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// LeadUpdateRequest is the request body for PATCH /spark/admin/leads/:id.
type LeadUpdateRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

// adminLeadUpdateHandler handles PATCH /spark/admin/leads/:id.
func (s *Server) adminLeadUpdateHandler(c *echo.Context) error {
	client := currentClient(c)
	leadID := c.Param("id")
	if leadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lead id is required")
	}

	var req LeadUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.Leads.Update(c.Request().Context(), client.ID, leadID, services.UpdateLeadInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, leadOut(updated))
}

// adminMetricsSummaryHandler handles GET /spark/admin/metrics/summary.
func (s *Server) adminMetricsSummaryHandler(c *echo.Context) error {
	client := currentClient(c)

	summary, err := s.Dashboard.Summary(c.Request().Context(), client.ID, queryInt(c, "days", 30))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// adminMetricsTimeseriesHandler handles GET /spark/admin/metrics/timeseries.
func (s *Server) adminMetricsTimeseriesHandler(c *echo.Context) error {
	client := currentClient(c)

	ts, err := s.Dashboard.Timeseries(c.Request().Context(), client.ID, queryInt(c, "days", 30))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ts)
}
