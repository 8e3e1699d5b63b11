package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/services"
)

// LeadRequest is the request body for POST /spark/lead.
type LeadRequest struct {
	ConversationID string `json:"conversation_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"company_name"`
	Notes          string `json:"notes"`
}

// leadHandler handles POST /spark/lead: store the lead, mark the
// conversation, record analytics, and kick off the CRM sync in the
// background.
func (s *Server) leadHandler(c *echo.Context) error {
	client := currentClient(c)

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lead, err := s.Leads.Create(c.Request().Context(), services.CreateLeadInput{
		ClientID:       client.ID,
		ConversationID: req.ConversationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		CompanyName:    req.CompanyName,
		Notes:          req.Notes,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if req.ConversationID != "" {
		if err := s.Sessions.SetOutcome(c.Request().Context(), client.ID, req.ConversationID, "lead_captured"); err != nil {
			s.Logger.Warn("Failed to mark conversation outcome",
				"conversation_id", req.ConversationID, "error", err)
		}
	}

	clientID, convID := client.ID, req.ConversationID
	meta := map[string]interface{}{
		"has_email":   req.Email != "",
		"has_phone":   req.Phone != "",
		"has_company": req.CompanyName != "",
	}
	s.Pool.Submit("analytics_lead_captured", func(ctx context.Context) {
		if err := s.Events.Record(ctx, clientID, convID, "lead_captured", meta); err != nil {
			s.Logger.Warn("Analytics emit failed", "event_type", "lead_captured", "error", err)
		}
	})

	s.submitCRMSync(client, lead)

	return c.JSON(http.StatusOK, map[string]string{"status": "captured"})
}

func (s *Server) submitCRMSync(client *ent.Tenant, lead *ent.Lead) {
	cfg := client.SettlingConfig
	s.Pool.Submit("crm_sync", func(ctx context.Context) {
		s.CRM.SyncLead(ctx, cfg, lead)
	})
}
