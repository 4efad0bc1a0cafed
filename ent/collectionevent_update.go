// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hyejin/orbquest/ent/collectionevent"
	"github.com/hyejin/orbquest/ent/predicate"
)

// CollectionEventUpdate is the builder for updating CollectionEvent entities.
type CollectionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CollectionEventMutation
}

// Where appends a list predicates to the CollectionEventUpdate builder.
func (_u *CollectionEventUpdate) Where(ps ...predicate.CollectionEvent) *CollectionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CollectionEventUpdate) SetSessionID(v string) *CollectionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CollectionEventUpdate) SetNillableSessionID(v *string) *CollectionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalAfter sets the "total_after" field.
func (_u *CollectionEventUpdate) SetTotalAfter(v int) *CollectionEventUpdate {
	_u.mutation.ResetTotalAfter()
	_u.mutation.SetTotalAfter(v)
	return _u
}

// SetNillableTotalAfter sets the "total_after" field if the given value is not nil.
func (_u *CollectionEventUpdate) SetNillableTotalAfter(v *int) *CollectionEventUpdate {
	if v != nil {
		_u.SetTotalAfter(*v)
	}
	return _u
}

// AddTotalAfter adds value to the "total_after" field.
func (_u *CollectionEventUpdate) AddTotalAfter(v int) *CollectionEventUpdate {
	_u.mutation.AddTotalAfter(v)
	return _u
}

// SetObjectName sets the "object_name" field.
func (_u *CollectionEventUpdate) SetObjectName(v string) *CollectionEventUpdate {
	_u.mutation.SetObjectName(v)
	return _u
}

// SetNillableObjectName sets the "object_name" field if the given value is not nil.
func (_u *CollectionEventUpdate) SetNillableObjectName(v *string) *CollectionEventUpdate {
	if v != nil {
		_u.SetObjectName(*v)
	}
	return _u
}

// ClearObjectName clears the value of the "object_name" field.
func (_u *CollectionEventUpdate) ClearObjectName() *CollectionEventUpdate {
	_u.mutation.ClearObjectName()
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *CollectionEventUpdate) SetAccepted(v bool) *CollectionEventUpdate {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *CollectionEventUpdate) SetNillableAccepted(v *bool) *CollectionEventUpdate {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the CollectionEventMutation object of the builder.
func (_u *CollectionEventUpdate) Mutation() *CollectionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollectionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollectionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := collectionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAfter(); ok {
		if err := collectionevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.total_after": %w`, err)}
		}
	}
	return nil
}

func (_u *CollectionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionevent.Table, collectionevent.Columns, sqlgraph.NewFieldSpec(collectionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(collectionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAfter(); ok {
		_spec.SetField(collectionevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAfter(); ok {
		_spec.AddField(collectionevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectName(); ok {
		_spec.SetField(collectionevent.FieldObjectName, field.TypeString, value)
	}
	if _u.mutation.ObjectNameCleared() {
		_spec.ClearField(collectionevent.FieldObjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(collectionevent.FieldAccepted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollectionEventUpdateOne is the builder for updating a single CollectionEvent entity.
type CollectionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollectionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CollectionEventUpdateOne) SetSessionID(v string) *CollectionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CollectionEventUpdateOne) SetNillableSessionID(v *string) *CollectionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalAfter sets the "total_after" field.
func (_u *CollectionEventUpdateOne) SetTotalAfter(v int) *CollectionEventUpdateOne {
	_u.mutation.ResetTotalAfter()
	_u.mutation.SetTotalAfter(v)
	return _u
}

// SetNillableTotalAfter sets the "total_after" field if the given value is not nil.
func (_u *CollectionEventUpdateOne) SetNillableTotalAfter(v *int) *CollectionEventUpdateOne {
	if v != nil {
		_u.SetTotalAfter(*v)
	}
	return _u
}

// AddTotalAfter adds value to the "total_after" field.
func (_u *CollectionEventUpdateOne) AddTotalAfter(v int) *CollectionEventUpdateOne {
	_u.mutation.AddTotalAfter(v)
	return _u
}

// SetObjectName sets the "object_name" field.
func (_u *CollectionEventUpdateOne) SetObjectName(v string) *CollectionEventUpdateOne {
	_u.mutation.SetObjectName(v)
	return _u
}

// SetNillableObjectName sets the "object_name" field if the given value is not nil.
func (_u *CollectionEventUpdateOne) SetNillableObjectName(v *string) *CollectionEventUpdateOne {
	if v != nil {
		_u.SetObjectName(*v)
	}
	return _u
}

// ClearObjectName clears the value of the "object_name" field.
func (_u *CollectionEventUpdateOne) ClearObjectName() *CollectionEventUpdateOne {
	_u.mutation.ClearObjectName()
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *CollectionEventUpdateOne) SetAccepted(v bool) *CollectionEventUpdateOne {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *CollectionEventUpdateOne) SetNillableAccepted(v *bool) *CollectionEventUpdateOne {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the CollectionEventMutation object of the builder.
func (_u *CollectionEventUpdateOne) Mutation() *CollectionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CollectionEventUpdate builder.
func (_u *CollectionEventUpdateOne) Where(ps ...predicate.CollectionEvent) *CollectionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollectionEventUpdateOne) Select(field string, fields ...string) *CollectionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollectionEvent entity.
func (_u *CollectionEventUpdateOne) Save(ctx context.Context) (*CollectionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionEventUpdateOne) SaveX(ctx context.Context) *CollectionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollectionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := collectionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAfter(); ok {
		if err := collectionevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "CollectionEvent.total_after": %w`, err)}
		}
	}
	return nil
}

func (_u *CollectionEventUpdateOne) sqlSave(ctx context.Context) (_node *CollectionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionevent.Table, collectionevent.Columns, sqlgraph.NewFieldSpec(collectionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionevent.FieldID)
		for _, f := range fields {
			if !collectionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectionevent.FieldID {
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
		_spec.SetField(collectionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAfter(); ok {
		_spec.SetField(collectionevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAfter(); ok {
		_spec.AddField(collectionevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectName(); ok {
		_spec.SetField(collectionevent.FieldObjectName, field.TypeString, value)
	}
	if _u.mutation.ObjectNameCleared() {
		_spec.ClearField(collectionevent.FieldObjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(collectionevent.FieldAccepted, field.TypeBool, value)
	}
	_node = &CollectionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
