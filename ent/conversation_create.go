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
	"github.com/trykin/spark/ent/message"
	"github.com/trykin/spark/ent/tenant"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *ConversationCreate) SetClientID(v string) *ConversationCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSessionToken sets the "session_token" field.
func (_c *ConversationCreate) SetSessionToken(v string) *ConversationCreate {
	_c.mutation.SetSessionToken(v)
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *ConversationCreate) SetIPAddress(v string) *ConversationCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetVisitorFingerprint sets the "visitor_fingerprint" field.
func (_c *ConversationCreate) SetVisitorFingerprint(v string) *ConversationCreate {
	_c.mutation.SetVisitorFingerprint(v)
	return _c
}

// SetNillableVisitorFingerprint sets the "visitor_fingerprint" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableVisitorFingerprint(v *string) *ConversationCreate {
	if v != nil {
		_c.SetVisitorFingerprint(*v)
	}
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *ConversationCreate) SetTurnCount(v int) *ConversationCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTurnCount(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ConversationCreate) SetState(v conversation.State) *ConversationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableState(v *conversation.State) *ConversationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ConversationCreate) SetOutcome(v conversation.Outcome) *ConversationCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableOutcome(v *conversation.Outcome) *ConversationCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *ConversationCreate) SetSentiment(v string) *ConversationCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableSentiment(v *string) *ConversationCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetBoundarySignalsFired sets the "boundary_signals_fired" field.
func (_c *ConversationCreate) SetBoundarySignalsFired(v int) *ConversationCreate {
	_c.mutation.SetBoundarySignalsFired(v)
	return _c
}

// SetNillableBoundarySignalsFired sets the "boundary_signals_fired" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableBoundarySignalsFired(v *int) *ConversationCreate {
	if v != nil {
		_c.SetBoundarySignalsFired(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ConversationCreate) SetExpiresAt(v time.Time) *ConversationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ConversationCreate) SetEndedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableEndedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClient sets the "client" edge to the Tenant entity.
func (_c *ConversationCreate) SetClient(v *Tenant) *ConversationCreate {
	return _c.SetClientID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := conversation.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := conversation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.BoundarySignalsFired(); !ok {
		v := conversation.DefaultBoundarySignalsFired
		_c.mutation.SetBoundarySignalsFired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Conversation.client_id"`)}
	}
	if _, ok := _c.mutation.SessionToken(); !ok {
		return &ValidationError{Name: "session_token", err: errors.New(`ent: missing required field "Conversation.session_token"`)}
	}
	if _, ok := _c.mutation.IPAddress(); !ok {
		return &ValidationError{Name: "ip_address", err: errors.New(`ent: missing required field "Conversation.ip_address"`)}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "Conversation.turn_count"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Conversation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := conversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Conversation.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := conversation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Conversation.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoundarySignalsFired(); !ok {
		return &ValidationError{Name: "boundary_signals_fired", err: errors.New(`ent: missing required field "Conversation.boundary_signals_fired"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Conversation.expires_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Conversation.client"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionToken(); ok {
		_spec.SetField(conversation.FieldSessionToken, field.TypeString, value)
		_node.SessionToken = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(conversation.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.VisitorFingerprint(); ok {
		_spec.SetField(conversation.FieldVisitorFingerprint, field.TypeString, value)
		_node.VisitorFingerprint = &value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(conversation.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(conversation.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(conversation.FieldSentiment, field.TypeString, value)
		_node.Sentiment = &value
	}
	if value, ok := _c.mutation.BoundarySignalsFired(); ok {
		_spec.SetField(conversation.FieldBoundarySignalsFired, field.TypeInt, value)
		_node.BoundarySignalsFired = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(conversation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(conversation.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.ClientTable,
			Columns: []string{conversation.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
