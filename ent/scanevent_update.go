// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hyejin/orbquest/ent/predicate"
	"github.com/hyejin/orbquest/ent/scanevent"
)

// ScanEventUpdate is the builder for updating ScanEvent entities.
type ScanEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScanEventMutation
}

// Where appends a list predicates to the ScanEventUpdate builder.
func (_u *ScanEventUpdate) Where(ps ...predicate.ScanEvent) *ScanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScanEventUpdate) SetSessionID(v string) *ScanEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScanEventUpdate) SetNillableSessionID(v *string) *ScanEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAnchorsCreated sets the "anchors_created" field.
func (_u *ScanEventUpdate) SetAnchorsCreated(v int) *ScanEventUpdate {
	_u.mutation.ResetAnchorsCreated()
	_u.mutation.SetAnchorsCreated(v)
	return _u
}

// SetNillableAnchorsCreated sets the "anchors_created" field if the given value is not nil.
func (_u *ScanEventUpdate) SetNillableAnchorsCreated(v *int) *ScanEventUpdate {
	if v != nil {
		_u.SetAnchorsCreated(*v)
	}
	return _u
}

// AddAnchorsCreated adds value to the "anchors_created" field.
func (_u *ScanEventUpdate) AddAnchorsCreated(v int) *ScanEventUpdate {
	_u.mutation.AddAnchorsCreated(v)
	return _u
}

// SetObjectsDetected sets the "objects_detected" field.
func (_u *ScanEventUpdate) SetObjectsDetected(v int) *ScanEventUpdate {
	_u.mutation.ResetObjectsDetected()
	_u.mutation.SetObjectsDetected(v)
	return _u
}

// SetNillableObjectsDetected sets the "objects_detected" field if the given value is not nil.
func (_u *ScanEventUpdate) SetNillableObjectsDetected(v *int) *ScanEventUpdate {
	if v != nil {
		_u.SetObjectsDetected(*v)
	}
	return _u
}

// AddObjectsDetected adds value to the "objects_detected" field.
func (_u *ScanEventUpdate) AddObjectsDetected(v int) *ScanEventUpdate {
	_u.mutation.AddObjectsDetected(v)
	return _u
}

// Mutation returns the ScanEventMutation object of the builder.
func (_u *ScanEventUpdate) Mutation() *ScanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scanevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnchorsCreated(); ok {
		if err := scanevent.AnchorsCreatedValidator(v); err != nil {
			return &ValidationError{Name: "anchors_created", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.anchors_created": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectsDetected(); ok {
		if err := scanevent.ObjectsDetectedValidator(v); err != nil {
			return &ValidationError{Name: "objects_detected", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.objects_detected": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanevent.Table, scanevent.Columns, sqlgraph.NewFieldSpec(scanevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scanevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnchorsCreated(); ok {
		_spec.SetField(scanevent.FieldAnchorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnchorsCreated(); ok {
		_spec.AddField(scanevent.FieldAnchorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectsDetected(); ok {
		_spec.SetField(scanevent.FieldObjectsDetected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectsDetected(); ok {
		_spec.AddField(scanevent.FieldObjectsDetected, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanEventUpdateOne is the builder for updating a single ScanEvent entity.
type ScanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScanEventUpdateOne) SetSessionID(v string) *ScanEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScanEventUpdateOne) SetNillableSessionID(v *string) *ScanEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAnchorsCreated sets the "anchors_created" field.
func (_u *ScanEventUpdateOne) SetAnchorsCreated(v int) *ScanEventUpdateOne {
	_u.mutation.ResetAnchorsCreated()
	_u.mutation.SetAnchorsCreated(v)
	return _u
}

// SetNillableAnchorsCreated sets the "anchors_created" field if the given value is not nil.
func (_u *ScanEventUpdateOne) SetNillableAnchorsCreated(v *int) *ScanEventUpdateOne {
	if v != nil {
		_u.SetAnchorsCreated(*v)
	}
	return _u
}

// AddAnchorsCreated adds value to the "anchors_created" field.
func (_u *ScanEventUpdateOne) AddAnchorsCreated(v int) *ScanEventUpdateOne {
	_u.mutation.AddAnchorsCreated(v)
	return _u
}

// SetObjectsDetected sets the "objects_detected" field.
func (_u *ScanEventUpdateOne) SetObjectsDetected(v int) *ScanEventUpdateOne {
	_u.mutation.ResetObjectsDetected()
	_u.mutation.SetObjectsDetected(v)
	return _u
}

// SetNillableObjectsDetected sets the "objects_detected" field if the given value is not nil.
func (_u *ScanEventUpdateOne) SetNillableObjectsDetected(v *int) *ScanEventUpdateOne {
	if v != nil {
		_u.SetObjectsDetected(*v)
	}
	return _u
}

// AddObjectsDetected adds value to the "objects_detected" field.
func (_u *ScanEventUpdateOne) AddObjectsDetected(v int) *ScanEventUpdateOne {
	_u.mutation.AddObjectsDetected(v)
	return _u
}

// Mutation returns the ScanEventMutation object of the builder.
func (_u *ScanEventUpdateOne) Mutation() *ScanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScanEventUpdate builder.
func (_u *ScanEventUpdateOne) Where(ps ...predicate.ScanEvent) *ScanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanEventUpdateOne) Select(field string, fields ...string) *ScanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanEvent entity.
func (_u *ScanEventUpdateOne) Save(ctx context.Context) (*ScanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanEventUpdateOne) SaveX(ctx context.Context) *ScanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scanevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnchorsCreated(); ok {
		if err := scanevent.AnchorsCreatedValidator(v); err != nil {
			return &ValidationError{Name: "anchors_created", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.anchors_created": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectsDetected(); ok {
		if err := scanevent.ObjectsDetectedValidator(v); err != nil {
			return &ValidationError{Name: "objects_detected", err: fmt.Errorf(`ent: validator failed for field "ScanEvent.objects_detected": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanEventUpdateOne) sqlSave(ctx context.Context) (_node *ScanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanevent.Table, scanevent.Columns, sqlgraph.NewFieldSpec(scanevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanevent.FieldID)
		for _, f := range fields {
			if !scanevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scanevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnchorsCreated(); ok {
		_spec.SetField(scanevent.FieldAnchorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnchorsCreated(); ok {
		_spec.AddField(scanevent.FieldAnchorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectsDetected(); ok {
		_spec.SetField(scanevent.FieldObjectsDetected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectsDetected(); ok {
		_spec.AddField(scanevent.FieldObjectsDetected, field.TypeInt, value)
	}
	_node = &ScanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
