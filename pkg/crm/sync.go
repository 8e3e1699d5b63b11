// Package crm pushes captured leads to external systems: a HubSpot
// contact upsert and/or a tenant-configured webhook. Syncs run on the
// background pool; failures are logged and recorded on the lead row
// for a later retry sweep, never surfaced to the visitor.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/models"
)

const (
	hubspotContactsURL = "https://api.hubapi.com/crm/v3/objects/contacts"
	syncTimeout        = 10 * time.Second
)

// StatusSetter records the outcome of a sync attempt on the lead row.
// Satisfied by *services.LeadService.
type StatusSetter interface {
	SetCRMSyncStatus(ctx context.Context, leadID, status string) error
}

// Syncer pushes leads to whatever CRM targets a tenant has configured.
type Syncer struct {
	httpClient *http.Client
	leads      StatusSetter
	logger     *slog.Logger

	// Overridable in tests.
	hubspotURL string
}

// NewSyncer creates a new Syncer.
func NewSyncer(leads StatusSetter, logger *slog.Logger) *Syncer {
	return &Syncer{
		httpClient: &http.Client{Timeout: syncTimeout},
		leads:      leads,
		logger:     logger,
		hubspotURL: hubspotContactsURL,
	}
}

// SyncLead pushes one lead to the tenant's HubSpot account and webhook,
// whichever are configured, then records the outcome. A tenant with no
// CRM configured gets an immediate "synced" since there is nothing to
// do. Errors are logged, not returned.
func (s *Syncer) SyncLead(ctx context.Context, cfg models.SettlingConfig, l *ent.Lead) {
	if cfg.HubspotAPIKey == "" && cfg.WebhookURL == "" {
		s.setStatus(ctx, l.ID, "synced")
		return
	}

	var errs []error

	if cfg.HubspotAPIKey != "" {
		if err := s.hubspotUpsert(ctx, cfg.HubspotAPIKey, l); err != nil {
			errs = append(errs, fmt.Errorf("hubspot: %w", err))
		}
	}

	if cfg.WebhookURL != "" {
		if err := s.webhookPost(ctx, cfg.WebhookURL, l); err != nil {
			errs = append(errs, fmt.Errorf("webhook: %w", err))
		}
	}

	if len(errs) > 0 {
		s.logger.Error("CRM sync failed", "lead_id", l.ID, "error", errors.Join(errs...))
		s.setStatus(ctx, l.ID, "failed")
		return
	}
	s.setStatus(ctx, l.ID, "synced")
}

func (s *Syncer) setStatus(ctx context.Context, leadID, status string) {
	if err := s.leads.SetCRMSyncStatus(ctx, leadID, status); err != nil {
		s.logger.Error("Failed to record CRM sync status",
			"lead_id", leadID, "status", status, "error", err)
	}
}

// splitName breaks a full name into HubSpot's firstname and lastname.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// hubspotUpsert creates a contact keyed on email, falling back to a
// patch when HubSpot reports the contact already exists. Leads without
// an email are skipped, there is nothing to key the upsert on.
func (s *Syncer) hubspotUpsert(ctx context.Context, apiKey string, l *ent.Lead) error {
	email := deref(l.Email)
	if email == "" {
		s.logger.Warn("HubSpot sync skipped, lead has no email", "lead_id", l.ID)
		return nil
	}

	properties := map[string]string{
		"email":          email,
		"hs_lead_status": "NEW",
	}
	first, last := splitName(deref(l.Name))
	if first != "" {
		properties["firstname"] = first
	}
	if last != "" {
		properties["lastname"] = last
	}
	if company := deref(l.CompanyName); company != "" {
		properties["company"] = company
	}
	if phone := deref(l.Phone); phone != "" {
		properties["phone"] = phone
	}

	body, err := json.Marshal(map[string]interface{}{"properties": properties})
	if err != nil {
		return fmt.Errorf("failed to marshal contact: %w", err)
	}

	resp, err := s.hubspotRequest(ctx, http.MethodPost, s.hubspotURL, apiKey, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		contactID, perr := existingContactID(resp.Body)
		if perr != nil {
			return fmt.Errorf("contact exists but conflict response had no ID: %w", perr)
		}
		update, err := s.hubspotRequest(ctx, http.MethodPatch, s.hubspotURL+"/"+contactID, apiKey, body)
		if err != nil {
			return err
		}
		defer update.Body.Close()
		if update.StatusCode >= 400 {
			return fmt.Errorf("contact update returned %d", update.StatusCode)
		}
		s.logger.Info("HubSpot contact updated", "contact_id", contactID)
		return nil
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("contact create returned %d", resp.StatusCode)
	}
	s.logger.Info("HubSpot contact created", "email", email)
	return nil
}

func (s *Syncer) hubspotRequest(ctx context.Context, method, url, apiKey string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// existingContactID pulls the contact ID out of HubSpot's 409 body,
// which reports it as "... Existing ID: 12345".
func existingContactID(body io.Reader) (string, error) {
	var conflict struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&conflict); err != nil {
		return "", fmt.Errorf("failed to decode conflict response: %w", err)
	}
	_, after, found := strings.Cut(conflict.Message, "Existing ID: ")
	if !found {
		return "", fmt.Errorf("no existing ID in message %q", conflict.Message)
	}
	return strings.TrimSuffix(strings.TrimSpace(after), "."), nil
}

// webhookPost delivers the lead as JSON to the tenant's webhook.
func (s *Syncer) webhookPost(ctx context.Context, url string, l *ent.Lead) error {
	payload := map[string]interface{}{
		"email":        deref(l.Email),
		"name":         deref(l.Name),
		"phone":        deref(l.Phone),
		"company_name": deref(l.CompanyName),
		"notes":        deref(l.Notes),
	}
	if l.ConversationID != nil {
		payload["conversation_id"] = *l.ConversationID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	s.logger.Info("Webhook delivered", "url", url)
	return nil
}
