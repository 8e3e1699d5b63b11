// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/lead"
	"github.com/trykin/spark/ent/tenant"
	"github.com/trykin/spark/pkg/models"
)

// TenantCreate is the builder for creating a Tenant entity.
type TenantCreate struct {
	config
	mutation *TenantMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TenantCreate) SetName(v string) *TenantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *TenantCreate) SetSlug(v string) *TenantCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *TenantCreate) SetAPIKeyHash(v string) *TenantCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TenantCreate) SetUserID(v string) *TenantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *TenantCreate) SetNillableUserID(v *string) *TenantCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *TenantCreate) SetActive(v bool) *TenantCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *TenantCreate) SetNillableActive(v *bool) *TenantCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetMaxTurns sets the "max_turns" field.
func (_c *TenantCreate) SetMaxTurns(v int) *TenantCreate {
	_c.mutation.SetMaxTurns(v)
	return _c
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_c *TenantCreate) SetNillableMaxTurns(v *int) *TenantCreate {
	if v != nil {
		_c.SetMaxTurns(*v)
	}
	return _c
}

// SetRateLimitRpm sets the "rate_limit_rpm" field.
func (_c *TenantCreate) SetRateLimitRpm(v int) *TenantCreate {
	_c.mutation.SetRateLimitRpm(v)
	return _c
}

// SetNillableRateLimitRpm sets the "rate_limit_rpm" field if the given value is not nil.
func (_c *TenantCreate) SetNillableRateLimitRpm(v *int) *TenantCreate {
	if v != nil {
		_c.SetRateLimitRpm(*v)
	}
	return _c
}

// SetSettlingConfig sets the "settling_config" field.
func (_c *TenantCreate) SetSettlingConfig(v models.SettlingConfig) *TenantCreate {
	_c.mutation.SetSettlingConfig(v)
	return _c
}

// SetNillableSettlingConfig sets the "settling_config" field if the given value is not nil.
func (_c *TenantCreate) SetNillableSettlingConfig(v *models.SettlingConfig) *TenantCreate {
	if v != nil {
		_c.SetSettlingConfig(*v)
	}
	return _c
}

// SetClientOrientation sets the "client_orientation" field.
func (_c *TenantCreate) SetClientOrientation(v string) *TenantCreate {
	_c.mutation.SetClientOrientation(v)
	return _c
}

// SetNillableClientOrientation sets the "client_orientation" field if the given value is not nil.
func (_c *TenantCreate) SetNillableClientOrientation(v *string) *TenantCreate {
	if v != nil {
		_c.SetClientOrientation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantCreate) SetCreatedAt(v time.Time) *TenantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantCreate) SetNillableCreatedAt(v *time.Time) *TenantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantCreate) SetUpdatedAt(v time.Time) *TenantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantCreate) SetNillableUpdatedAt(v *time.Time) *TenantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantCreate) SetID(v string) *TenantCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *TenantCreate) AddConversationIDs(ids ...string) *TenantCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *TenantCreate) AddConversations(v ...*Conversation) *TenantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddKnowledgeItemIDs adds the "knowledge_items" edge to the KnowledgeItem entity by IDs.
func (_c *TenantCreate) AddKnowledgeItemIDs(ids ...string) *TenantCreate {
	_c.mutation.AddKnowledgeItemIDs(ids...)
	return _c
}

// AddKnowledgeItems adds the "knowledge_items" edges to the KnowledgeItem entity.
func (_c *TenantCreate) AddKnowledgeItems(v ...*KnowledgeItem) *TenantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeItemIDs(ids...)
}

// AddDocumentChunkIDs adds the "document_chunks" edge to the DocumentChunk entity by IDs.
func (_c *TenantCreate) AddDocumentChunkIDs(ids ...string) *TenantCreate {
	_c.mutation.AddDocumentChunkIDs(ids...)
	return _c
}

// AddDocumentChunks adds the "document_chunks" edges to the DocumentChunk entity.
func (_c *TenantCreate) AddDocumentChunks(v ...*DocumentChunk) *TenantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentChunkIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_c *TenantCreate) AddLeadIDs(ids ...string) *TenantCreate {
	_c.mutation.AddLeadIDs(ids...)
	return _c
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_c *TenantCreate) AddLeads(v ...*Lead) *TenantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeadIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_c *TenantCreate) Mutation() *TenantMutation {
	return _c.mutation
}

// Save creates the Tenant in the database.
func (_c *TenantCreate) Save(ctx context.Context) (*Tenant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantCreate) SaveX(ctx context.Context) *Tenant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := tenant.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		v := tenant.DefaultMaxTurns
		_c.mutation.SetMaxTurns(v)
	}
	if _, ok := _c.mutation.RateLimitRpm(); !ok {
		v := tenant.DefaultRateLimitRpm
		_c.mutation.SetRateLimitRpm(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tenant.name"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Tenant.slug"`)}
	}
	if _, ok := _c.mutation.APIKeyHash(); !ok {
		return &ValidationError{Name: "api_key_hash", err: errors.New(`ent: missing required field "Tenant.api_key_hash"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Tenant.active"`)}
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		return &ValidationError{Name: "max_turns", err: errors.New(`ent: missing required field "Tenant.max_turns"`)}
	}
	if _, ok := _c.mutation.RateLimitRpm(); !ok {
		return &ValidationError{Name: "rate_limit_rpm", err: errors.New(`ent: missing required field "Tenant.rate_limit_rpm"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tenant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tenant.updated_at"`)}
	}
	return nil
}

func (_c *TenantCreate) sqlSave(ctx context.Context) (*Tenant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Tenant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantCreate) createSpec() (*Tenant, *sqlgraph.CreateSpec) {
	var (
		_node = &Tenant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenant.Table, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(tenant.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tenant.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.MaxTurns(); ok {
		_spec.SetField(tenant.FieldMaxTurns, field.TypeInt, value)
		_node.MaxTurns = value
	}
	if value, ok := _c.mutation.RateLimitRpm(); ok {
		_spec.SetField(tenant.FieldRateLimitRpm, field.TypeInt, value)
		_node.RateLimitRpm = value
	}
	if value, ok := _c.mutation.SettlingConfig(); ok {
		_spec.SetField(tenant.FieldSettlingConfig, field.TypeJSON, value)
		_node.SettlingConfig = value
	}
	if value, ok := _c.mutation.ClientOrientation(); ok {
		_spec.SetField(tenant.FieldClientOrientation, field.TypeString, value)
		_node.ClientOrientation = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KnowledgeItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeItemsTable,
			Columns: []string{tenant.KnowledgeItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.DocumentChunksTable,
			Columns: []string{tenant.DocumentChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.LeadsTable,
			Columns: []string{tenant.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TenantCreateBulk is the builder for creating many Tenant entities in bulk.
type TenantCreateBulk struct {
	config
	err      error
	builders []*TenantCreate
}

// Save creates the Tenant entities in the database.
func (_c *TenantCreateBulk) Save(ctx context.Context) ([]*Tenant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tenant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TenantCreateBulk) SaveX(ctx context.Context) []*Tenant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
