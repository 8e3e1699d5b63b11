// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/sparkevent"
)

// SparkEventCreate is the builder for creating a SparkEvent entity.
type SparkEventCreate struct {
	config
	mutation *SparkEventMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *SparkEventCreate) SetClientID(v string) *SparkEventCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *SparkEventCreate) SetConversationID(v string) *SparkEventCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *SparkEventCreate) SetNillableConversationID(v *string) *SparkEventCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SparkEventCreate) SetEventType(v string) *SparkEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SparkEventCreate) SetMetadata(v map[string]interface{}) *SparkEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SparkEventCreate) SetCreatedAt(v time.Time) *SparkEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SparkEventCreate) SetNillableCreatedAt(v *time.Time) *SparkEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SparkEventCreate) SetID(v string) *SparkEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SparkEventMutation object of the builder.
func (_c *SparkEventCreate) Mutation() *SparkEventMutation {
	return _c.mutation
}

// Save creates the SparkEvent in the database.
func (_c *SparkEventCreate) Save(ctx context.Context) (*SparkEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SparkEventCreate) SaveX(ctx context.Context) *SparkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SparkEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SparkEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SparkEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sparkevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SparkEventCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "SparkEvent.client_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SparkEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SparkEvent.created_at"`)}
	}
	return nil
}

func (_c *SparkEventCreate) sqlSave(ctx context.Context) (*SparkEvent, error) {
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
			return nil, fmt.Errorf("unexpected SparkEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SparkEventCreate) createSpec() (*SparkEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SparkEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sparkevent.Table, sqlgraph.NewFieldSpec(sparkevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(sparkevent.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(sparkevent.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(sparkevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(sparkevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sparkevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SparkEventCreateBulk is the builder for creating many SparkEvent entities in bulk.
type SparkEventCreateBulk struct {
	config
	err      error
	builders []*SparkEventCreate
}

// Save creates the SparkEvent entities in the database.
func (_c *SparkEventCreateBulk) Save(ctx context.Context) ([]*SparkEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SparkEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SparkEventMutation)
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
func (_c *SparkEventCreateBulk) SaveX(ctx context.Context) []*SparkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SparkEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SparkEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
