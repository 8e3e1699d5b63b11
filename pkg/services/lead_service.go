package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/lead"
)

// LeadService manages captured leads.
type LeadService struct {
	client *ent.Client
}

// NewLeadService creates a new LeadService
func NewLeadService(client *ent.Client) *LeadService {
	return &LeadService{client: client}
}

// CreateLeadInput carries the visitor-submitted lead fields.
type CreateLeadInput struct {
	ClientID       string
	ConversationID string
	Name           string
	Email          string
	Phone          string
	CompanyName    string
	Notes          string
}

// Create stores a new lead. At least one contact field is required.
func (s *LeadService) Create(ctx context.Context, in CreateLeadInput) (*ent.Lead, error) {
	if in.Email == "" && in.Phone == "" && in.Name == "" {
		return nil, NewValidationError("lead", "at least one of name, email, or phone is required")
	}

	builder := s.client.Lead.Create().
		SetID(uuid.New().String()).
		SetClientID(in.ClientID)
	if in.ConversationID != "" {
		builder.SetConversationID(in.ConversationID)
	}
	if in.Name != "" {
		builder.SetName(in.Name)
	}
	if in.Email != "" {
		builder.SetEmail(in.Email)
	}
	if in.Phone != "" {
		builder.SetPhone(in.Phone)
	}
	if in.CompanyName != "" {
		builder.SetCompanyName(in.CompanyName)
	}
	if in.Notes != "" {
		builder.SetNotes(in.Notes)
	}

	l, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return l, nil
}

// LeadFilter narrows lead listings and exports.
type LeadFilter struct {
	Status   string
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
	Offset   int
}

// List returns a page of a tenant's leads, newest first, plus the
// total count matching the filter.
func (s *LeadService) List(ctx context.Context, clientID string, f LeadFilter) ([]*ent.Lead, int, error) {
	q := s.leadQuery(clientID, f)

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	leads, err := q.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, total, nil
}

// ListAll returns every lead matching the filter, newest first. Used
// by the CSV export, which is not paginated.
func (s *LeadService) ListAll(ctx context.Context, clientID string, f LeadFilter) ([]*ent.Lead, error) {
	leads, err := s.leadQuery(clientID, f).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export leads: %w", err)
	}
	return leads, nil
}

func (s *LeadService) leadQuery(clientID string, f LeadFilter) *ent.LeadQuery {
	q := s.client.Lead.Query().Where(lead.ClientID(clientID))
	if f.Status != "" {
		q = q.Where(lead.StatusEQ(lead.Status(f.Status)))
	}
	if !f.DateFrom.IsZero() {
		q = q.Where(lead.CreatedAtGTE(f.DateFrom))
	}
	if !f.DateTo.IsZero() {
		q = q.Where(lead.CreatedAtLTE(f.DateTo))
	}
	return q
}

// ByConversation returns the lead captured during a conversation, or
// ErrNotFound.
func (s *LeadService) ByConversation(ctx context.Context, conversationID string) (*ent.Lead, error) {
	l, err := s.client.Lead.Query().
		Where(lead.ConversationID(conversationID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	return l, nil
}

// UpdateLeadInput carries admin-editable lead fields. Nil means leave
// unchanged.
type UpdateLeadInput struct {
	Status     *string
	AdminNotes *string
}

var validLeadStatuses = map[string]struct{}{
	"new": {}, "contacted": {}, "converted": {}, "lost": {},
}

// Update changes a lead's status or admin notes. The lead must belong
// to the tenant.
func (s *LeadService) Update(ctx context.Context, clientID, leadID string, in UpdateLeadInput) (*ent.Lead, error) {
	existing, err := s.client.Lead.Query().
		Where(lead.ID(leadID), lead.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	if in.Status == nil && in.AdminNotes == nil {
		return existing, nil
	}

	builder := existing.Update()
	if in.Status != nil {
		if _, ok := validLeadStatuses[*in.Status]; !ok {
			return nil, NewValidationError("status", "must be one of: contacted, converted, lost, new")
		}
		builder.SetStatus(lead.Status(*in.Status))
	}
	if in.AdminNotes != nil {
		builder.SetAdminNotes(*in.AdminNotes)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return updated, nil
}

// SetCRMSyncStatus records the outcome of a CRM sync attempt.
func (s *LeadService) SetCRMSyncStatus(ctx context.Context, leadID, status string) error {
	err := s.client.Lead.UpdateOneID(leadID).
		SetCrmSyncStatus(lead.CrmSyncStatus(status)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update crm sync status: %w", err)
	}
	return nil
}
