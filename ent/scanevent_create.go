// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hyejin/orbquest/ent/scanevent"
)

// ScanEventCreate is the builder for creating a ScanEvent entity.
type ScanEventCreate struct {
	config
	mutation *ScanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScanEventCreate) SetSequence(v int64) *ScanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScanEventCreate) SetTimestamp(v time.Time) *ScanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScanEventCreate) SetNillableTimestamp(v *time.Time) *ScanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScanEventCreate) SetSessionID(v string) *ScanEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAnchorsCreated sets the "anchors_created" field.
func (_c *ScanEventCreate) SetAnchorsCreated(v int) *ScanEventCreate {
	_c.mutation.SetAnchorsCreated(v)
	return _c
}

// SetNillableAnchorsCreated sets the "anchors_created" field if the given value is not nil.
func (_c *ScanEventCreate) SetNillableAnchorsCreated(v *int) *ScanEventCreate {
	if v != nil {
		_c.SetAnchorsCreated(*v)
	}
	return _c
}

// SetObjectsDetected sets the "objects_detected" field.
func (_c *ScanEventCreate) SetObjectsDetected(v int) *ScanEventCreate {
	_c.mutation.SetObjectsDetected(v)
	return _c
}

// SetNillableObjectsDetected sets the "objects_detected" field if the given value is not nil.
func (_c *ScanEventCreate) SetNillableObjectsDetected(v *int) *ScanEventCreate {
	if v != nil {
		_c.SetObjectsDetected(*v)
	}
	return _c
}

// Mutation returns the ScanEventMutation object of the builder.
func (_c *ScanEventCreate) Mutation() *ScanEventMutation {
	return _c.mutation
}

// Save creates the ScanEvent in the database.
func (_c *ScanEventCreate) Save(ctx context.Context) (*ScanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanEventCreate) SaveX(ctx context.Context) *ScanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scanevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AnchorsCreated(); !ok {
		v := scanevent.DefaultAnchorsCreated
		_c.mutation.SetAnchorsCreated(v)
	}
	if _, ok := _c.mutation.ObjectsDetected(); !ok {
		v := scanevent.DefaultObjectsDetected
		_c.mutation.SetObjectsDetected(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ScanEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := scanevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnchorsCreated(); !ok {
		return &ValidationError{Name: "anchors_created", err: errors.New(`ent: missing required field "ScanEvent.anchors_created"`)}
	}
	if v, ok := _c.mutation.AnchorsCreated(); ok {
		if err := scanevent.AnchorsCreatedValidator(v); err != nil {
			return &ValidationError{Name: "anchors_created", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.anchors_created": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectsDetected(); !ok {
		return &ValidationError{Name: "objects_detected", err: errors.New(`ent: missing required field "ScanEvent.objects_detected"`)}
	}
	if v, ok := _c.mutation.ObjectsDetected(); ok {
		if err := scanevent.ObjectsDetectedValidator(v); err != nil {
			return &ValidationError{Name: "objects_detected", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.objects_detected": %w`, err)}
		}
	}
	return nil
}

func (_c *ScanEventCreate) sqlSave(ctx context.Context) (*ScanEvent, error) {
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

func (_c *ScanEventCreate) createSpec() (*ScanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanevent.Table, sqlgraph.NewFieldSpec(scanevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scanevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scanevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scanevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AnchorsCreated(); ok {
		_spec.SetField(scanevent.FieldAnchorsCreated, field.TypeInt, value)
		_node.AnchorsCreated = value
	}
	if value, ok := _c.mutation.ObjectsDetected(); ok {
		_spec.SetField(scanevent.FieldObjectsDetected, field.TypeInt, value)
		_node.ObjectsDetected = value
	}
	return _node, _spec
}

// ScanEventCreateBulk is the builder for creating many ScanEvent entities in bulk.
type ScanEventCreateBulk struct {
	config
	err      error
	builders []*ScanEventCreate
}

// Save creates the ScanEvent entities in the database.
func (_c *ScanEventCreateBulk) Save(ctx context.Context) ([]*ScanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanEventMutation)
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
func (_c *ScanEventCreateBulk) SaveX(ctx context.Context) []*ScanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
