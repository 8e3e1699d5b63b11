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
	"github.com/trykin/spark/ent/message"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/tenant"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ConversationUpdate) SetClientID(v string) *ConversationUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableClientID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *ConversationUpdate) SetSessionToken(v string) *ConversationUpdate {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSessionToken(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ConversationUpdate) SetIPAddress(v string) *ConversationUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableIPAddress(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetVisitorFingerprint sets the "visitor_fingerprint" field.
func (_u *ConversationUpdate) SetVisitorFingerprint(v string) *ConversationUpdate {
	_u.mutation.SetVisitorFingerprint(v)
	return _u
}

// SetNillableVisitorFingerprint sets the "visitor_fingerprint" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableVisitorFingerprint(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetVisitorFingerprint(*v)
	}
	return _u
}

// ClearVisitorFingerprint clears the value of the "visitor_fingerprint" field.
func (_u *ConversationUpdate) ClearVisitorFingerprint() *ConversationUpdate {
	_u.mutation.ClearVisitorFingerprint()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdate) SetTurnCount(v int) *ConversationUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTurnCount(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdate) AddTurnCount(v int) *ConversationUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ConversationUpdate) SetState(v conversation.State) *ConversationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableState(v *conversation.State) *ConversationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ConversationUpdate) SetOutcome(v conversation.Outcome) *ConversationUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableOutcome(v *conversation.Outcome) *ConversationUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ConversationUpdate) ClearOutcome() *ConversationUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ConversationUpdate) SetSentiment(v string) *ConversationUpdate {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSentiment(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ConversationUpdate) ClearSentiment() *ConversationUpdate {
	_u.mutation.ClearSentiment()
	return _u
}

// SetBoundarySignalsFired sets the "boundary_signals_fired" field.
func (_u *ConversationUpdate) SetBoundarySignalsFired(v int) *ConversationUpdate {
	_u.mutation.ResetBoundarySignalsFired()
	_u.mutation.SetBoundarySignalsFired(v)
	return _u
}

// SetNillableBoundarySignalsFired sets the "boundary_signals_fired" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableBoundarySignalsFired(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetBoundarySignalsFired(*v)
	}
	return _u
}

// AddBoundarySignalsFired adds value to the "boundary_signals_fired" field.
func (_u *ConversationUpdate) AddBoundarySignalsFired(v int) *ConversationUpdate {
	_u.mutation.AddBoundarySignalsFired(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationUpdate) SetExpiresAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableExpiresAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ConversationUpdate) SetEndedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableEndedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ConversationUpdate) ClearEndedAt() *ConversationUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *ConversationUpdate) SetClient(v *Tenant) *ConversationUpdate {
	return _u.SetClientID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *ConversationUpdate) ClearClient() *ConversationUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := conversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Conversation.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := conversation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Conversation.outcome": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.client"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(conversation.FieldSessionToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(conversation.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorFingerprint(); ok {
		_spec.SetField(conversation.FieldVisitorFingerprint, field.TypeString, value)
	}
	if _u.mutation.VisitorFingerprintCleared() {
		_spec.ClearField(conversation.FieldVisitorFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(conversation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(conversation.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(conversation.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(conversation.FieldSentiment, field.TypeString, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(conversation.FieldSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.BoundarySignalsFired(); ok {
		_spec.SetField(conversation.FieldBoundarySignalsFired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoundarySignalsFired(); ok {
		_spec.AddField(conversation.FieldBoundarySignalsFired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(conversation.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(conversation.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetClientID sets the "client_id" field.
func (_u *ConversationUpdateOne) SetClientID(v string) *ConversationUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableClientID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *ConversationUpdateOne) SetSessionToken(v string) *ConversationUpdateOne {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSessionToken(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ConversationUpdateOne) SetIPAddress(v string) *ConversationUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableIPAddress(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// SetVisitorFingerprint sets the "visitor_fingerprint" field.
func (_u *ConversationUpdateOne) SetVisitorFingerprint(v string) *ConversationUpdateOne {
	_u.mutation.SetVisitorFingerprint(v)
	return _u
}

// SetNillableVisitorFingerprint sets the "visitor_fingerprint" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableVisitorFingerprint(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetVisitorFingerprint(*v)
	}
	return _u
}

// ClearVisitorFingerprint clears the value of the "visitor_fingerprint" field.
func (_u *ConversationUpdateOne) ClearVisitorFingerprint() *ConversationUpdateOne {
	_u.mutation.ClearVisitorFingerprint()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdateOne) SetTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTurnCount(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdateOne) AddTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ConversationUpdateOne) SetState(v conversation.State) *ConversationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableState(v *conversation.State) *ConversationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ConversationUpdateOne) SetOutcome(v conversation.Outcome) *ConversationUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableOutcome(v *conversation.Outcome) *ConversationUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ConversationUpdateOne) ClearOutcome() *ConversationUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ConversationUpdateOne) SetSentiment(v string) *ConversationUpdateOne {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSentiment(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ConversationUpdateOne) ClearSentiment() *ConversationUpdateOne {
	_u.mutation.ClearSentiment()
	return _u
}

// SetBoundarySignalsFired sets the "boundary_signals_fired" field.
func (_u *ConversationUpdateOne) SetBoundarySignalsFired(v int) *ConversationUpdateOne {
	_u.mutation.ResetBoundarySignalsFired()
	_u.mutation.SetBoundarySignalsFired(v)
	return _u
}

// SetNillableBoundarySignalsFired sets the "boundary_signals_fired" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableBoundarySignalsFired(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetBoundarySignalsFired(*v)
	}
	return _u
}

// AddBoundarySignalsFired adds value to the "boundary_signals_fired" field.
func (_u *ConversationUpdateOne) AddBoundarySignalsFired(v int) *ConversationUpdateOne {
	_u.mutation.AddBoundarySignalsFired(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationUpdateOne) SetExpiresAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableExpiresAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ConversationUpdateOne) SetEndedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableEndedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ConversationUpdateOne) ClearEndedAt() *ConversationUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *ConversationUpdateOne) SetClient(v *Tenant) *ConversationUpdateOne {
	return _u.SetClientID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *ConversationUpdateOne) ClearClient() *ConversationUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := conversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Conversation.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := conversation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Conversation.outcome": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.client"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(conversation.FieldSessionToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(conversation.FieldIPAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorFingerprint(); ok {
		_spec.SetField(conversation.FieldVisitorFingerprint, field.TypeString, value)
	}
	if _u.mutation.VisitorFingerprintCleared() {
		_spec.ClearField(conversation.FieldVisitorFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(conversation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(conversation.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(conversation.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(conversation.FieldSentiment, field.TypeString, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(conversation.FieldSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.BoundarySignalsFired(); ok {
		_spec.SetField(conversation.FieldBoundarySignalsFired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoundarySignalsFired(); ok {
		_spec.AddField(conversation.FieldBoundarySignalsFired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(conversation.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(conversation.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
