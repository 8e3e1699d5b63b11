// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trykin/spark/ent/tenant"
	"github.com/trykin/spark/pkg/models"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// SHA-256 hex of the publishable widget key
	APIKeyHash string `json:"api_key_hash,omitempty"`
	// Identity-provider subject of the admin account
	UserID *string `json:"user_id,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// MaxTurns holds the value of the "max_turns" field.
	MaxTurns int `json:"max_turns,omitempty"`
	// RateLimitRpm holds the value of the "rate_limit_rpm" field.
	RateLimitRpm int `json:"rate_limit_rpm,omitempty"`
	// Per-tenant persona and behavior knobs
	SettlingConfig models.SettlingConfig `json:"settling_config,omitempty"`
	// Tenant-provided orientation text; overrides the on-disk template
	ClientOrientation *string `json:"client_orientation,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// KnowledgeItems holds the value of the knowledge_items edge.
	KnowledgeItems []*KnowledgeItem `json:"knowledge_items,omitempty"`
	// DocumentChunks holds the value of the document_chunks edge.
	DocumentChunks []*DocumentChunk `json:"document_chunks,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[0] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// KnowledgeItemsOrErr returns the KnowledgeItems value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) KnowledgeItemsOrErr() ([]*KnowledgeItem, error) {
	if e.loadedTypes[1] {
		return e.KnowledgeItems, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_items"}
}

// DocumentChunksOrErr returns the DocumentChunks value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) DocumentChunksOrErr() ([]*DocumentChunk, error) {
	if e.loadedTypes[2] {
		return e.DocumentChunks, nil
	}
	return nil, &NotLoadedError{edge: "document_chunks"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[3] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldSettlingConfig:
			values[i] = new([]byte)
		case tenant.FieldActive:
			values[i] = new(sql.NullBool)
		case tenant.FieldMaxTurns, tenant.FieldRateLimitRpm:
			values[i] = new(sql.NullInt64)
		case tenant.FieldID, tenant.FieldName, tenant.FieldSlug, tenant.FieldAPIKeyHash, tenant.FieldUserID, tenant.FieldClientOrientation:
			values[i] = new(sql.NullString)
		case tenant.FieldCreatedAt, tenant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (_m *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tenant.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case tenant.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = value.String
			}
		case tenant.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case tenant.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case tenant.FieldMaxTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_turns", values[i])
			} else if value.Valid {
				_m.MaxTurns = int(value.Int64)
			}
		case tenant.FieldRateLimitRpm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_limit_rpm", values[i])
			} else if value.Valid {
				_m.RateLimitRpm = int(value.Int64)
			}
		case tenant.FieldSettlingConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settling_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SettlingConfig); err != nil {
					return fmt.Errorf("unmarshal field settling_config: %w", err)
				}
			}
		case tenant.FieldClientOrientation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_orientation", values[i])
			} else if value.Valid {
				_m.ClientOrientation = new(string)
				*_m.ClientOrientation = value.String
			}
		case tenant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (_m *Tenant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversations queries the "conversations" edge of the Tenant entity.
func (_m *Tenant) QueryConversations() *ConversationQuery {
	return NewTenantClient(_m.config).QueryConversations(_m)
}

// QueryKnowledgeItems queries the "knowledge_items" edge of the Tenant entity.
func (_m *Tenant) QueryKnowledgeItems() *KnowledgeItemQuery {
	return NewTenantClient(_m.config).QueryKnowledgeItems(_m)
}

// QueryDocumentChunks queries the "document_chunks" edge of the Tenant entity.
func (_m *Tenant) QueryDocumentChunks() *DocumentChunkQuery {
	return NewTenantClient(_m.config).QueryDocumentChunks(_m)
}

// QueryLeads queries the "leads" edge of the Tenant entity.
func (_m *Tenant) QueryLeads() *LeadQuery {
	return NewTenantClient(_m.config).QueryLeads(_m)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tenant) Unwrap() *Tenant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("api_key_hash=")
	builder.WriteString(_m.APIKeyHash)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("max_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTurns))
	builder.WriteString(", ")
	builder.WriteString("rate_limit_rpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateLimitRpm))
	builder.WriteString(", ")
	builder.WriteString("settling_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.SettlingConfig))
	builder.WriteString(", ")
	if v := _m.ClientOrientation; v != nil {
		builder.WriteString("client_orientation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
