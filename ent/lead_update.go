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
	"github.com/trykin/spark/ent/lead"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/tenant"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *LeadUpdate) SetClientID(v string) *LeadUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableClientID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *LeadUpdate) SetConversationID(v string) *LeadUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConversationID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *LeadUpdate) ClearConversationID() *LeadUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *LeadUpdate) ClearName() *LeadUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdate) SetCompanyName(v string) *LeadUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdate) ClearCompanyName() *LeadUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdate) SetNotes(v string) *LeadUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNotes(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdate) ClearNotes() *LeadUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v lead.Status) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *lead.Status) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *LeadUpdate) SetAdminNotes(v string) *LeadUpdate {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAdminNotes(v *string) *LeadUpdate {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *LeadUpdate) ClearAdminNotes() *LeadUpdate {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCrmSyncStatus sets the "crm_sync_status" field.
func (_u *LeadUpdate) SetCrmSyncStatus(v lead.CrmSyncStatus) *LeadUpdate {
	_u.mutation.SetCrmSyncStatus(v)
	return _u
}

// SetNillableCrmSyncStatus sets the "crm_sync_status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCrmSyncStatus(v *lead.CrmSyncStatus) *LeadUpdate {
	if v != nil {
		_u.SetCrmSyncStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *LeadUpdate) SetClient(v *Tenant) *LeadUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *LeadUpdate) ClearClient() *LeadUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CrmSyncStatus(); ok {
		if err := lead.CrmSyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "crm_sync_status", err: fmt.Errorf(`ent: validator failed for field "Lead.crm_sync_status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.client"`)
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(lead.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(lead.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(lead.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(lead.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(lead.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CrmSyncStatus(); ok {
		_spec.SetField(lead.FieldCrmSyncStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ClientTable,
			Columns: []string{lead.ClientColumn},
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
			Table:   lead.ClientTable,
			Columns: []string{lead.ClientColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetClientID sets the "client_id" field.
func (_u *LeadUpdateOne) SetClientID(v string) *LeadUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableClientID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *LeadUpdateOne) SetConversationID(v string) *LeadUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConversationID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *LeadUpdateOne) ClearConversationID() *LeadUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *LeadUpdateOne) ClearName() *LeadUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdateOne) SetCompanyName(v string) *LeadUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdateOne) ClearCompanyName() *LeadUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdateOne) SetNotes(v string) *LeadUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNotes(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdateOne) ClearNotes() *LeadUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v lead.Status) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *lead.Status) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *LeadUpdateOne) SetAdminNotes(v string) *LeadUpdateOne {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAdminNotes(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *LeadUpdateOne) ClearAdminNotes() *LeadUpdateOne {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCrmSyncStatus sets the "crm_sync_status" field.
func (_u *LeadUpdateOne) SetCrmSyncStatus(v lead.CrmSyncStatus) *LeadUpdateOne {
	_u.mutation.SetCrmSyncStatus(v)
	return _u
}

// SetNillableCrmSyncStatus sets the "crm_sync_status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCrmSyncStatus(v *lead.CrmSyncStatus) *LeadUpdateOne {
	if v != nil {
		_u.SetCrmSyncStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *LeadUpdateOne) SetClient(v *Tenant) *LeadUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *LeadUpdateOne) ClearClient() *LeadUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CrmSyncStatus(); ok {
		if err := lead.CrmSyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "crm_sync_status", err: fmt.Errorf(`ent: validator failed for field "Lead.crm_sync_status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.client"`)
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(lead.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(lead.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(lead.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(lead.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(lead.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CrmSyncStatus(); ok {
		_spec.SetField(lead.FieldCrmSyncStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ClientTable,
			Columns: []string{lead.ClientColumn},
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
			Table:   lead.ClientTable,
			Columns: []string{lead.ClientColumn},
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
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
