// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/lead"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/tenant"
	"github.com/trykin/spark/pkg/models"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TenantUpdate) SetName(v string) *TenantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableName(v *string) *TenantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdate) SetSlug(v string) *TenantUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSlug(v *string) *TenantUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TenantUpdate) SetAPIKeyHash(v string) *TenantUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableAPIKeyHash(v *string) *TenantUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TenantUpdate) SetUserID(v string) *TenantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableUserID(v *string) *TenantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TenantUpdate) ClearUserID() *TenantUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetActive sets the "active" field.
func (_u *TenantUpdate) SetActive(v bool) *TenantUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableActive(v *bool) *TenantUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *TenantUpdate) SetMaxTurns(v int) *TenantUpdate {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableMaxTurns(v *int) *TenantUpdate {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *TenantUpdate) AddMaxTurns(v int) *TenantUpdate {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetRateLimitRpm sets the "rate_limit_rpm" field.
func (_u *TenantUpdate) SetRateLimitRpm(v int) *TenantUpdate {
	_u.mutation.ResetRateLimitRpm()
	_u.mutation.SetRateLimitRpm(v)
	return _u
}

// SetNillableRateLimitRpm sets the "rate_limit_rpm" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableRateLimitRpm(v *int) *TenantUpdate {
	if v != nil {
		_u.SetRateLimitRpm(*v)
	}
	return _u
}

// AddRateLimitRpm adds value to the "rate_limit_rpm" field.
func (_u *TenantUpdate) AddRateLimitRpm(v int) *TenantUpdate {
	_u.mutation.AddRateLimitRpm(v)
	return _u
}

// SetSettlingConfig sets the "settling_config" field.
func (_u *TenantUpdate) SetSettlingConfig(v models.SettlingConfig) *TenantUpdate {
	_u.mutation.SetSettlingConfig(v)
	return _u
}

// SetNillableSettlingConfig sets the "settling_config" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSettlingConfig(v *models.SettlingConfig) *TenantUpdate {
	if v != nil {
		_u.SetSettlingConfig(*v)
	}
	return _u
}

// ClearSettlingConfig clears the value of the "settling_config" field.
func (_u *TenantUpdate) ClearSettlingConfig() *TenantUpdate {
	_u.mutation.ClearSettlingConfig()
	return _u
}

// SetClientOrientation sets the "client_orientation" field.
func (_u *TenantUpdate) SetClientOrientation(v string) *TenantUpdate {
	_u.mutation.SetClientOrientation(v)
	return _u
}

// SetNillableClientOrientation sets the "client_orientation" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableClientOrientation(v *string) *TenantUpdate {
	if v != nil {
		_u.SetClientOrientation(*v)
	}
	return _u
}

// ClearClientOrientation clears the value of the "client_orientation" field.
func (_u *TenantUpdate) ClearClientOrientation() *TenantUpdate {
	_u.mutation.ClearClientOrientation()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdate) SetUpdatedAt(v time.Time) *TenantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *TenantUpdate) AddConversationIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *TenantUpdate) AddConversations(v ...*Conversation) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddKnowledgeItemIDs adds the "knowledge_items" edge to the KnowledgeItem entity by IDs.
func (_u *TenantUpdate) AddKnowledgeItemIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddKnowledgeItemIDs(ids...)
	return _u
}

// AddKnowledgeItems adds the "knowledge_items" edges to the KnowledgeItem entity.
func (_u *TenantUpdate) AddKnowledgeItems(v ...*KnowledgeItem) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeItemIDs(ids...)
}

// AddDocumentChunkIDs adds the "document_chunks" edge to the DocumentChunk entity by IDs.
func (_u *TenantUpdate) AddDocumentChunkIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddDocumentChunkIDs(ids...)
	return _u
}

// AddDocumentChunks adds the "document_chunks" edges to the DocumentChunk entity.
func (_u *TenantUpdate) AddDocumentChunks(v ...*DocumentChunk) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentChunkIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *TenantUpdate) AddLeadIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *TenantUpdate) AddLeads(v ...*Lead) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *TenantUpdate) ClearConversations() *TenantUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *TenantUpdate) RemoveConversationIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *TenantUpdate) RemoveConversations(v ...*Conversation) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearKnowledgeItems clears all "knowledge_items" edges to the KnowledgeItem entity.
func (_u *TenantUpdate) ClearKnowledgeItems() *TenantUpdate {
	_u.mutation.ClearKnowledgeItems()
	return _u
}

// RemoveKnowledgeItemIDs removes the "knowledge_items" edge to KnowledgeItem entities by IDs.
func (_u *TenantUpdate) RemoveKnowledgeItemIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveKnowledgeItemIDs(ids...)
	return _u
}

// RemoveKnowledgeItems removes "knowledge_items" edges to KnowledgeItem entities.
func (_u *TenantUpdate) RemoveKnowledgeItems(v ...*KnowledgeItem) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeItemIDs(ids...)
}

// ClearDocumentChunks clears all "document_chunks" edges to the DocumentChunk entity.
func (_u *TenantUpdate) ClearDocumentChunks() *TenantUpdate {
	_u.mutation.ClearDocumentChunks()
	return _u
}

// RemoveDocumentChunkIDs removes the "document_chunks" edge to DocumentChunk entities by IDs.
func (_u *TenantUpdate) RemoveDocumentChunkIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveDocumentChunkIDs(ids...)
	return _u
}

// RemoveDocumentChunks removes "document_chunks" edges to DocumentChunk entities.
func (_u *TenantUpdate) RemoveDocumentChunks(v ...*DocumentChunk) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentChunkIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *TenantUpdate) ClearLeads() *TenantUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *TenantUpdate) RemoveLeadIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *TenantUpdate) RemoveLeads(v ...*Lead) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tenant.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tenant.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(tenant.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(tenant.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(tenant.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateLimitRpm(); ok {
		_spec.SetField(tenant.FieldRateLimitRpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitRpm(); ok {
		_spec.AddField(tenant.FieldRateLimitRpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SettlingConfig(); ok {
		_spec.SetField(tenant.FieldSettlingConfig, field.TypeJSON, value)
	}
	if _u.mutation.SettlingConfigCleared() {
		_spec.ClearField(tenant.FieldSettlingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClientOrientation(); ok {
		_spec.SetField(tenant.FieldClientOrientation, field.TypeString, value)
	}
	if _u.mutation.ClientOrientationCleared() {
		_spec.ClearField(tenant.FieldClientOrientation, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeItemsIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentChunksIDs(); len(nodes) > 0 && !_u.mutation.DocumentChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetName sets the "name" field.
func (_u *TenantUpdateOne) SetName(v string) *TenantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableName(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdateOne) SetSlug(v string) *TenantUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSlug(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TenantUpdateOne) SetAPIKeyHash(v string) *TenantUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableAPIKeyHash(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TenantUpdateOne) SetUserID(v string) *TenantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableUserID(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TenantUpdateOne) ClearUserID() *TenantUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetActive sets the "active" field.
func (_u *TenantUpdateOne) SetActive(v bool) *TenantUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableActive(v *bool) *TenantUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *TenantUpdateOne) SetMaxTurns(v int) *TenantUpdateOne {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableMaxTurns(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *TenantUpdateOne) AddMaxTurns(v int) *TenantUpdateOne {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetRateLimitRpm sets the "rate_limit_rpm" field.
func (_u *TenantUpdateOne) SetRateLimitRpm(v int) *TenantUpdateOne {
	_u.mutation.ResetRateLimitRpm()
	_u.mutation.SetRateLimitRpm(v)
	return _u
}

// SetNillableRateLimitRpm sets the "rate_limit_rpm" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableRateLimitRpm(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetRateLimitRpm(*v)
	}
	return _u
}

// AddRateLimitRpm adds value to the "rate_limit_rpm" field.
func (_u *TenantUpdateOne) AddRateLimitRpm(v int) *TenantUpdateOne {
	_u.mutation.AddRateLimitRpm(v)
	return _u
}

// SetSettlingConfig sets the "settling_config" field.
func (_u *TenantUpdateOne) SetSettlingConfig(v models.SettlingConfig) *TenantUpdateOne {
	_u.mutation.SetSettlingConfig(v)
	return _u
}

// SetNillableSettlingConfig sets the "settling_config" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSettlingConfig(v *models.SettlingConfig) *TenantUpdateOne {
	if v != nil {
		_u.SetSettlingConfig(*v)
	}
	return _u
}

// ClearSettlingConfig clears the value of the "settling_config" field.
func (_u *TenantUpdateOne) ClearSettlingConfig() *TenantUpdateOne {
	_u.mutation.ClearSettlingConfig()
	return _u
}

// SetClientOrientation sets the "client_orientation" field.
func (_u *TenantUpdateOne) SetClientOrientation(v string) *TenantUpdateOne {
	_u.mutation.SetClientOrientation(v)
	return _u
}

// SetNillableClientOrientation sets the "client_orientation" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableClientOrientation(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetClientOrientation(*v)
	}
	return _u
}

// ClearClientOrientation clears the value of the "client_orientation" field.
func (_u *TenantUpdateOne) ClearClientOrientation() *TenantUpdateOne {
	_u.mutation.ClearClientOrientation()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdateOne) SetUpdatedAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *TenantUpdateOne) AddConversationIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *TenantUpdateOne) AddConversations(v ...*Conversation) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddKnowledgeItemIDs adds the "knowledge_items" edge to the KnowledgeItem entity by IDs.
func (_u *TenantUpdateOne) AddKnowledgeItemIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddKnowledgeItemIDs(ids...)
	return _u
}

// AddKnowledgeItems adds the "knowledge_items" edges to the KnowledgeItem entity.
func (_u *TenantUpdateOne) AddKnowledgeItems(v ...*KnowledgeItem) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeItemIDs(ids...)
}

// AddDocumentChunkIDs adds the "document_chunks" edge to the DocumentChunk entity by IDs.
func (_u *TenantUpdateOne) AddDocumentChunkIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddDocumentChunkIDs(ids...)
	return _u
}

// AddDocumentChunks adds the "document_chunks" edges to the DocumentChunk entity.
func (_u *TenantUpdateOne) AddDocumentChunks(v ...*DocumentChunk) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentChunkIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *TenantUpdateOne) AddLeadIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *TenantUpdateOne) AddLeads(v ...*Lead) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *TenantUpdateOne) ClearConversations() *TenantUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *TenantUpdateOne) RemoveConversationIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *TenantUpdateOne) RemoveConversations(v ...*Conversation) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearKnowledgeItems clears all "knowledge_items" edges to the KnowledgeItem entity.
func (_u *TenantUpdateOne) ClearKnowledgeItems() *TenantUpdateOne {
	_u.mutation.ClearKnowledgeItems()
	return _u
}

// RemoveKnowledgeItemIDs removes the "knowledge_items" edge to KnowledgeItem entities by IDs.
func (_u *TenantUpdateOne) RemoveKnowledgeItemIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveKnowledgeItemIDs(ids...)
	return _u
}

// RemoveKnowledgeItems removes "knowledge_items" edges to KnowledgeItem entities.
func (_u *TenantUpdateOne) RemoveKnowledgeItems(v ...*KnowledgeItem) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeItemIDs(ids...)
}

// ClearDocumentChunks clears all "document_chunks" edges to the DocumentChunk entity.
func (_u *TenantUpdateOne) ClearDocumentChunks() *TenantUpdateOne {
	_u.mutation.ClearDocumentChunks()
	return _u
}

// RemoveDocumentChunkIDs removes the "document_chunks" edge to DocumentChunk entities by IDs.
func (_u *TenantUpdateOne) RemoveDocumentChunkIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveDocumentChunkIDs(ids...)
	return _u
}

// RemoveDocumentChunks removes "document_chunks" edges to DocumentChunk entities.
func (_u *TenantUpdateOne) RemoveDocumentChunks(v ...*DocumentChunk) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentChunkIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *TenantUpdateOne) ClearLeads() *TenantUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *TenantUpdateOne) RemoveLeadIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *TenantUpdateOne) RemoveLeads(v ...*Lead) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tenant.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tenant.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(tenant.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(tenant.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(tenant.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateLimitRpm(); ok {
		_spec.SetField(tenant.FieldRateLimitRpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitRpm(); ok {
		_spec.AddField(tenant.FieldRateLimitRpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SettlingConfig(); ok {
		_spec.SetField(tenant.FieldSettlingConfig, field.TypeJSON, value)
	}
	if _u.mutation.SettlingConfigCleared() {
		_spec.ClearField(tenant.FieldSettlingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClientOrientation(); ok {
		_spec.SetField(tenant.FieldClientOrientation, field.TypeString, value)
	}
	if _u.mutation.ClientOrientationCleared() {
		_spec.ClearField(tenant.FieldClientOrientation, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeItemsIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentChunksIDs(); len(nodes) > 0 && !_u.mutation.DocumentChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
