// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/tenant"
)

// DocumentChunkUpdate is the builder for updating DocumentChunk entities.
type DocumentChunkUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdate) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *DocumentChunkUpdate) SetClientID(v string) *DocumentChunkUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableClientID(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdate) SetContent(v string) *DocumentChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableContent(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentChunkUpdate) SetTitle(v string) *DocumentChunkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableTitle(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentChunkUpdate) ClearTitle() *DocumentChunkUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentChunkUpdate) SetSourceType(v string) *DocumentChunkUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableSourceType(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentChunkUpdate) SetSourceURL(v string) *DocumentChunkUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableSourceURL(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentChunkUpdate) ClearSourceURL() *DocumentChunkUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdate) SetChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableChunkIndex(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdate) AddChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentChunkUpdate) SetContentHash(v string) *DocumentChunkUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableContentHash(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *DocumentChunkUpdate) SetClient(v *Tenant) *DocumentChunkUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdate) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *DocumentChunkUpdate) ClearClient() *DocumentChunkUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdate) check() error {
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.client"`)
	}
	return nil
}

func (_u *DocumentChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentchunk.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(documentchunk.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(documentchunk.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(documentchunk.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(documentchunk.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(documentchunk.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.ClientTable,
			Columns: []string{documentchunk.ClientColumn},
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
			Table:   documentchunk.ClientTable,
			Columns: []string{documentchunk.ClientColumn},
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
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentChunkUpdateOne is the builder for updating a single DocumentChunk entity.
type DocumentChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// SetClientID sets the "client_id" field.
func (_u *DocumentChunkUpdateOne) SetClientID(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableClientID(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdateOne) SetContent(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableContent(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentChunkUpdateOne) SetTitle(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableTitle(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentChunkUpdateOne) ClearTitle() *DocumentChunkUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentChunkUpdateOne) SetSourceType(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableSourceType(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentChunkUpdateOne) SetSourceURL(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableSourceURL(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentChunkUpdateOne) ClearSourceURL() *DocumentChunkUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) SetChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableChunkIndex(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) AddChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentChunkUpdateOne) SetContentHash(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableContentHash(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetClient sets the "client" edge to the Tenant entity.
func (_u *DocumentChunkUpdateOne) SetClient(v *Tenant) *DocumentChunkUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdateOne) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the Tenant entity.
func (_u *DocumentChunkUpdateOne) ClearClient() *DocumentChunkUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdateOne) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentChunkUpdateOne) Select(field string, fields ...string) *DocumentChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentChunk entity.
func (_u *DocumentChunkUpdateOne) Save(ctx context.Context) (*DocumentChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) SaveX(ctx context.Context) *DocumentChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdateOne) check() error {
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.client"`)
	}
	return nil
}

func (_u *DocumentChunkUpdateOne) sqlSave(ctx context.Context) (_node *DocumentChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentchunk.FieldID)
		for _, f := range fields {
			if !documentchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentchunk.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentchunk.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(documentchunk.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(documentchunk.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(documentchunk.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(documentchunk.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(documentchunk.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.ClientTable,
			Columns: []string{documentchunk.ClientColumn},
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
			Table:   documentchunk.ClientTable,
			Columns: []string{documentchunk.ClientColumn},
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
	_node = &DocumentChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
