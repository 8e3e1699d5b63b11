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
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/tenant"
)

// KnowledgeItemUpdate is the builder for updating KnowledgeItem entities.
type KnowledgeItemUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeItemMutation
}

// Where appends a list predicates to the KnowledgeItemUpdate builder.
func (_u *KnowledgeItemUpdate) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *KnowledgeItemUpdate) SetClientID(v string) *KnowledgeItemUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableClientID(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeItemUpdate) SetTitle(v string) *KnowledgeItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableTitle(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeItemUpdate) SetContent(v string) *KnowledgeItemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableContent(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeItemUpdate) SetCategory(v string) *KnowledgeItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableCategory(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *KnowledgeItemUpdate) SetSubcategory(v string) *KnowledgeItemUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableSubcategory(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *KnowledgeItemUpdate) ClearSubcategory() *KnowledgeItemUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *KnowledgeItemUpdate) SetPriority(v int) *KnowledgeItemUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillablePriority(v *int) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *KnowledgeItemUpdate) AddPriority(v int) *KnowledgeItemUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *KnowledgeItemUpdate) SetActive(v bool) *KnowledgeItemUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableActive(v *bool) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *KnowledgeItemUpdate) SetContentHash(v string) *KnowledgeItemUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *KnowledgeItemUpdate) SetNillableContentHash(v *string) *KnowledgeItemUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeItemUpdate) SetUpdatedAt(v time.Time) *KnowledgeItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *KnowledgeItemUpdate) SetClient(v *Tenant) *KnowledgeItemUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_u *KnowledgeItemUpdate) Mutation() *KnowledgeItemMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *KnowledgeItemUpdate) ClearClient() *KnowledgeItemUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeItemUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := knowledgeitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.priority": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeItem.client"`)
	}
	return nil
}

func (_u *KnowledgeItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeitem.Table, knowledgeitem.Columns, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgeitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(knowledgeitem.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(knowledgeitem.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(knowledgeitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(knowledgeitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(knowledgeitem.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(knowledgeitem.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeitem.ClientTable,
			Columns: []string{knowledgeitem.ClientColumn},
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
			Table:   knowledgeitem.ClientTable,
			Columns: []string{knowledgeitem.ClientColumn},
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
			err = &NotFoundError{knowledgeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeItemUpdateOne is the builder for updating a single KnowledgeItem entity.
type KnowledgeItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeItemMutation
}

// SetClientID sets the "client_id" field.
func (_u *KnowledgeItemUpdateOne) SetClientID(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableClientID(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeItemUpdateOne) SetTitle(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableTitle(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeItemUpdateOne) SetContent(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableContent(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeItemUpdateOne) SetCategory(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableCategory(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *KnowledgeItemUpdateOne) SetSubcategory(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableSubcategory(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *KnowledgeItemUpdateOne) ClearSubcategory() *KnowledgeItemUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *KnowledgeItemUpdateOne) SetPriority(v int) *KnowledgeItemUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillablePriority(v *int) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *KnowledgeItemUpdateOne) AddPriority(v int) *KnowledgeItemUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *KnowledgeItemUpdateOne) SetActive(v bool) *KnowledgeItemUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableActive(v *bool) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *KnowledgeItemUpdateOne) SetContentHash(v string) *KnowledgeItemUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *KnowledgeItemUpdateOne) SetNillableContentHash(v *string) *KnowledgeItemUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeItemUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *KnowledgeItemUpdateOne) SetClient(v *Tenant) *KnowledgeItemUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_u *KnowledgeItemUpdateOne) Mutation() *KnowledgeItemMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *KnowledgeItemUpdateOne) ClearClient() *KnowledgeItemUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the KnowledgeItemUpdate builder.
func (_u *KnowledgeItemUpdateOne) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeItemUpdateOne) Select(field string, fields ...string) *KnowledgeItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeItem entity.
func (_u *KnowledgeItemUpdateOne) Save(ctx context.Context) (*KnowledgeItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeItemUpdateOne) SaveX(ctx context.Context) *KnowledgeItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeItemUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := knowledgeitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.priority": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeItem.client"`)
	}
	return nil
}

func (_u *KnowledgeItemUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeitem.Table, knowledgeitem.Columns, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeitem.FieldID)
		for _, f := range fields {
			if !knowledgeitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeitem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgeitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(knowledgeitem.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(knowledgeitem.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(knowledgeitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(knowledgeitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(knowledgeitem.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(knowledgeitem.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeitem.ClientTable,
			Columns: []string{knowledgeitem.ClientColumn},
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
			Table:   knowledgeitem.ClientTable,
			Columns: []string{knowledgeitem.ClientColumn},
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
	_node = &KnowledgeItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
