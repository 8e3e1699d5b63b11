// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/tenant"
)

// KnowledgeItemCreate is the builder for creating a KnowledgeItem entity.
type KnowledgeItemCreate struct {
	config
	mutation *KnowledgeItemMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *KnowledgeItemCreate) SetClientID(v string) *KnowledgeItemCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *KnowledgeItemCreate) SetTitle(v string) *KnowledgeItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeItemCreate) SetContent(v string) *KnowledgeItemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *KnowledgeItemCreate) SetCategory(v string) *KnowledgeItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *KnowledgeItemCreate) SetSubcategory(v string) *KnowledgeItemCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillableSubcategory(v *string) *KnowledgeItemCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *KnowledgeItemCreate) SetPriority(v int) *KnowledgeItemCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillablePriority(v *int) *KnowledgeItemCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *KnowledgeItemCreate) SetActive(v bool) *KnowledgeItemCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillableActive(v *bool) *KnowledgeItemCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *KnowledgeItemCreate) SetContentHash(v string) *KnowledgeItemCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeItemCreate) SetCreatedAt(v time.Time) *KnowledgeItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnowledgeItemCreate) SetUpdatedAt(v time.Time) *KnowledgeItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnowledgeItemCreate) SetNillableUpdatedAt(v *time.Time) *KnowledgeItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeItemCreate) SetID(v string) *KnowledgeItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClient sets the "client" edge to the Tenant entity.
func (_c *KnowledgeItemCreate) SetClient(v *Tenant) *KnowledgeItemCreate {
	return _c.SetClientID(v.ID)
}

// Mutation returns the KnowledgeItemMutation object of the builder.
func (_c *KnowledgeItemCreate) Mutation() *KnowledgeItemMutation {
	return _c.mutation
}

// Save creates the KnowledgeItem in the database.
func (_c *KnowledgeItemCreate) Save(ctx context.Context) (*KnowledgeItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeItemCreate) SaveX(ctx context.Context) *KnowledgeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeItemCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := knowledgeitem.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := knowledgeitem.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knowledgeitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeItemCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "KnowledgeItem.client_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "KnowledgeItem.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeItem.content"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "KnowledgeItem.category"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "KnowledgeItem.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := knowledgeitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "KnowledgeItem.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "KnowledgeItem.active"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "KnowledgeItem.content_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KnowledgeItem.updated_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "KnowledgeItem.client"`)}
	}
	return nil
}

func (_c *KnowledgeItemCreate) sqlSave(ctx context.Context) (*KnowledgeItem, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeItemCreate) createSpec() (*KnowledgeItem, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeitem.Table, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(knowledgeitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgeitem.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(knowledgeitem.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(knowledgeitem.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(knowledgeitem.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(knowledgeitem.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(knowledgeitem.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeItemCreateBulk is the builder for creating many KnowledgeItem entities in bulk.
type KnowledgeItemCreateBulk struct {
	config
	err      error
	builders []*KnowledgeItemCreate
}

// Save creates the KnowledgeItem entities in the database.
func (_c *KnowledgeItemCreateBulk) Save(ctx context.Context) ([]*KnowledgeItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeItemMutation)
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
func (_c *KnowledgeItemCreateBulk) SaveX(ctx context.Context) []*KnowledgeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
