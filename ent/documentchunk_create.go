// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/tenant"
)

// DocumentChunkCreate is the builder for creating a DocumentChunk entity.
type DocumentChunkCreate struct {
	config
	mutation *DocumentChunkMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *DocumentChunkCreate) SetClientID(v string) *DocumentChunkCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DocumentChunkCreate) SetContent(v string) *DocumentChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentChunkCreate) SetTitle(v string) *DocumentChunkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableTitle(v *string) *DocumentChunkCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DocumentChunkCreate) SetSourceType(v string) *DocumentChunkCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableSourceType(v *string) *DocumentChunkCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *DocumentChunkCreate) SetSourceURL(v string) *DocumentChunkCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableSourceURL(v *string) *DocumentChunkCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *DocumentChunkCreate) SetChunkIndex(v int) *DocumentChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableChunkIndex(v *int) *DocumentChunkCreate {
	if v != nil {
		_c.SetChunkIndex(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentChunkCreate) SetContentHash(v string) *DocumentChunkCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentChunkCreate) SetCreatedAt(v time.Time) *DocumentChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableCreatedAt(v *time.Time) *DocumentChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentChunkCreate) SetID(v string) *DocumentChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClient sets the "client" edge to the Tenant entity.
func (_c *DocumentChunkCreate) SetClient(v *Tenant) *DocumentChunkCreate {
	return _c.SetClientID(v.ID)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_c *DocumentChunkCreate) Mutation() *DocumentChunkMutation {
	return _c.mutation
}

// Save creates the DocumentChunk in the database.
func (_c *DocumentChunkCreate) Save(ctx context.Context) (*DocumentChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentChunkCreate) SaveX(ctx context.Context) *DocumentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentChunkCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := documentchunk.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		v := documentchunk.DefaultChunkIndex
		_c.mutation.SetChunkIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentchunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentChunkCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "DocumentChunk.client_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DocumentChunk.content"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "DocumentChunk.source_type"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "DocumentChunk.chunk_index"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "DocumentChunk.content_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentChunk.created_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "DocumentChunk.client"`)}
	}
	return nil
}

func (_c *DocumentChunkCreate) sqlSave(ctx context.Context) (*DocumentChunk, error) {
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
			return nil, fmt.Errorf("unexpected DocumentChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentChunkCreate) createSpec() (*DocumentChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentchunk.Table, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(documentchunk.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(documentchunk.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(documentchunk.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(documentchunk.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentchunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentChunkCreateBulk is the builder for creating many DocumentChunk entities in bulk.
type DocumentChunkCreateBulk struct {
	config
	err      error
	builders []*DocumentChunkCreate
}

// Save creates the DocumentChunk entities in the database.
func (_c *DocumentChunkCreateBulk) Save(ctx context.Context) ([]*DocumentChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentChunkMutation)
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
func (_c *DocumentChunkCreateBulk) SaveX(ctx context.Context) []*DocumentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
