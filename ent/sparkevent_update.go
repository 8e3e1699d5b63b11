// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/sparkevent"
)

// SparkEventUpdate is the builder for updating SparkEvent entities.
type SparkEventUpdate struct {
	config
	hooks    []Hook
	mutation *SparkEventMutation
}

// Where appends a list predicates to the SparkEventUpdate builder.
func (_u *SparkEventUpdate) Where(ps ...predicate.SparkEvent) *SparkEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SparkEventUpdate) SetClientID(v string) *SparkEventUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SparkEventUpdate) SetNillableClientID(v *string) *SparkEventUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *SparkEventUpdate) SetConversationID(v string) *SparkEventUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *SparkEventUpdate) SetNillableConversationID(v *string) *SparkEventUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *SparkEventUpdate) ClearConversationID() *SparkEventUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SparkEventUpdate) SetEventType(v string) *SparkEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SparkEventUpdate) SetNillableEventType(v *string) *SparkEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SparkEventUpdate) SetMetadata(v map[string]interface{}) *SparkEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SparkEventUpdate) ClearMetadata() *SparkEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SparkEventMutation object of the builder.
func (_u *SparkEventUpdate) Mutation() *SparkEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SparkEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SparkEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SparkEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SparkEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SparkEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sparkevent.Table, sparkevent.Columns, sqlgraph.NewFieldSpec(sparkevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(sparkevent.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(sparkevent.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(sparkevent.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sparkevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sparkevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sparkevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sparkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SparkEventUpdateOne is the builder for updating a single SparkEvent entity.
type SparkEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SparkEventMutation
}

// SetClientID sets the "client_id" field.
func (_u *SparkEventUpdateOne) SetClientID(v string) *SparkEventUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SparkEventUpdateOne) SetNillableClientID(v *string) *SparkEventUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *SparkEventUpdateOne) SetConversationID(v string) *SparkEventUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *SparkEventUpdateOne) SetNillableConversationID(v *string) *SparkEventUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *SparkEventUpdateOne) ClearConversationID() *SparkEventUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SparkEventUpdateOne) SetEventType(v string) *SparkEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SparkEventUpdateOne) SetNillableEventType(v *string) *SparkEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SparkEventUpdateOne) SetMetadata(v map[string]interface{}) *SparkEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SparkEventUpdateOne) ClearMetadata() *SparkEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SparkEventMutation object of the builder.
func (_u *SparkEventUpdateOne) Mutation() *SparkEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SparkEventUpdate builder.
func (_u *SparkEventUpdateOne) Where(ps ...predicate.SparkEvent) *SparkEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SparkEventUpdateOne) Select(field string, fields ...string) *SparkEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SparkEvent entity.
func (_u *SparkEventUpdateOne) Save(ctx context.Context) (*SparkEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SparkEventUpdateOne) SaveX(ctx context.Context) *SparkEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SparkEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SparkEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SparkEventUpdateOne) sqlSave(ctx context.Context) (_node *SparkEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(sparkevent.Table, sparkevent.Columns, sqlgraph.NewFieldSpec(sparkevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SparkEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sparkevent.FieldID)
		for _, f := range fields {
			if !sparkevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sparkevent.FieldID {
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
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(sparkevent.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(sparkevent.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(sparkevent.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sparkevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sparkevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sparkevent.FieldMetadata, field.TypeJSON)
	}
	_node = &SparkEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sparkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
