package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/tenant"
	"github.com/trykin/spark/pkg/models"
)

// ClientService resolves and manages tenants.
type ClientService struct {
	client *ent.Client
}

// NewClientService creates a new ClientService
func NewClientService(client *ent.Client) *ClientService {
	return &ClientService{client: client}
}

// GetByAPIKeyHash resolves a tenant from the SHA-256 hash of a widget
// API key. Callers decide how to treat an inactive tenant; the edge
// returns 403 so the site owner can tell a disabled account from a
// wrong key.
func (s *ClientService) GetByAPIKeyHash(ctx context.Context, hash string) (*ent.Tenant, error) {
	c, err := s.client.Tenant.Query().
		Where(tenant.APIKeyHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query client by api key: %w", err)
	}
	return c, nil
}

// GetByUserID resolves the tenant owned by an admin account.
func (s *ClientService) GetByUserID(ctx context.Context, userID string) (*ent.Tenant, error) {
	c, err := s.client.Tenant.Query().
		Where(tenant.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query client by user: %w", err)
	}
	return c, nil
}

// Get fetches a tenant by id.
func (s *ClientService) Get(ctx context.Context, id string) (*ent.Tenant, error) {
	c, err := s.client.Tenant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// UpdateSettlingConfig replaces the tenant's settling configuration.
// Unknown keys are rejected before the write.
func (s *ClientService) UpdateSettlingConfig(ctx context.Context, id string, raw json.RawMessage) (*ent.Tenant, error) {
	if err := models.ValidateSettlingKeys(raw); err != nil {
		return nil, NewValidationError("settling_config", err.Error())
	}

	var cfg models.SettlingConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, NewValidationError("settling_config", err.Error())
	}

	c, err := s.client.Tenant.UpdateOneID(id).
		SetSettlingConfig(cfg).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update settling config: %w", err)
	}
	return c, nil
}
