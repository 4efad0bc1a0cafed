// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hyejin/orbquest/ent/collectionevent"
)

// CollectionEventCreate is the builder for creating a CollectionEvent entity.
type CollectionEventCreate struct {
	config
	mutation *CollectionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CollectionEventCreate) SetSequence(v int64) *CollectionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CollectionEventCreate) SetTimestamp(v time.Time) *CollectionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CollectionEventCreate) SetNillableTimestamp(v *time.Time) *CollectionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CollectionEventCreate) SetSessionID(v string) *CollectionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTotalAfter sets the "total_after" field.
func (_c *CollectionEventCreate) SetTotalAfter(v int) *CollectionEventCreate {
	_c.mutation.SetTotalAfter(v)
	return _c
}

// SetObjectName sets the "object_name" field.
func (_c *CollectionEventCreate) SetObjectName(v string) *CollectionEventCreate {
	_c.mutation.SetObjectName(v)
	return _c
}

// SetNillableObjectName sets the "object_name" field if the given value is not nil.
func (_c *CollectionEventCreate) SetNillableObjectName(v *string) *CollectionEventCreate {
	if v != nil {
		_c.SetObjectName(*v)
	}
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *CollectionEventCreate) SetAccepted(v bool) *CollectionEventCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_c *CollectionEventCreate) SetNillableAccepted(v *bool) *CollectionEventCreate {
	if v != nil {
		_c.SetAccepted(*v)
	}
	return _c
}

// Mutation returns the CollectionEventMutation object of the builder.
func (_c *CollectionEventCreate) Mutation() *CollectionEventMutation {
	return _c.mutation
}

// Save creates the CollectionEvent in the database.
func (_c *CollectionEventCreate) Save(ctx context.Context) (*CollectionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollectionEventCreate) SaveX(ctx context.Context) *CollectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollectionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := collectionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		v := collectionevent.DefaultAccepted
		_c.mutation.SetAccepted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollectionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CollectionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CollectionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CollectionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := collectionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAfter(); !ok {
		return &ValidationError{Name: "total_after", err: errors.New(`ent: missing required field "CollectionEvent.total_after"`)}
	}
	if v, ok := _c.mutation.TotalAfter(); ok {
		if err := collectionevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.total_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "CollectionEvent.accepted"`)}
	}
	return nil
}

func (_c *CollectionEventCreate) sqlSave(ctx context.Context) (*CollectionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CollectionEventCreate) createSpec() (*CollectionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collectionevent.Table, sqlgraph.NewFieldSpec(collectionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(collectionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(collectionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(collectionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TotalAfter(); ok {
		_spec.SetField(collectionevent.FieldTotalAfter, field.TypeInt, value)
		_node.TotalAfter = value
	}
	if value, ok := _c.mutation.ObjectName(); ok {
		_spec.SetField(collectionevent.FieldObjectName, field.TypeString, value)
		_node.ObjectName = &value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(collectionevent.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	return _node, _spec
}

// CollectionEventCreateBulk is the builder for creating many CollectionEvent entities in bulk.
type CollectionEventCreateBulk struct {
	config
	err      error
	builders []*CollectionEventCreate
}

// Save creates the CollectionEvent entities in the database.
func (_c *CollectionEventCreateBulk) Save(ctx context.Context) ([]*CollectionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollectionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CollectionEventCreateBulk) SaveX(ctx context.Context) []*CollectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
