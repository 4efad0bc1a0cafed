// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hyejin/orbquest/ent/arsessionevent"
	"github.com/hyejin/orbquest/ent/predicate"
)

// ARSessionEventUpdate is the builder for updating ARSessionEvent entities.
type ARSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ARSessionEventMutation
}

// Where appends a list predicates to the ARSessionEventUpdate builder.
func (_u *ARSessionEventUpdate) Where(ps ...predicate.ARSessionEvent) *ARSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ARSessionEventUpdate) SetSessionID(v string) *ARSessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ARSessionEventUpdate) SetNillableSessionID(v *string) *ARSessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ARSessionEventUpdate) SetAction(v string) *ARSessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ARSessionEventUpdate) SetNillableAction(v *string) *ARSessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ARSessionEventUpdate) SetMessage(v string) *ARSessionEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ARSessionEventUpdate) SetNillableMessage(v *string) *ARSessionEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ARSessionEventUpdate) ClearMessage() *ARSessionEventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ARSessionEventUpdate) SetDurationSecs(v int) *ARSessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ARSessionEventUpdate) SetNillableDurationSecs(v *int) *ARSessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ARSessionEventUpdate) AddDurationSecs(v int) *ARSessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ARSessionEventMutation object of the builder.
func (_u *ARSessionEventUpdate) Mutation() *ARSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ARSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ARSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ARSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ARSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ARSessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := arsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ARSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := arsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ARSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ARSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(arsessionevent.Table, arsessionevent.Columns, sqlgraph.NewFieldSpec(arsessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(arsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(arsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(arsessionevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(arsessionevent.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(arsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(arsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{arsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ARSessionEventUpdateOne is the builder for updating a single ARSessionEvent entity.
type ARSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ARSessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ARSessionEventUpdateOne) SetSessionID(v string) *ARSessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ARSessionEventUpdateOne) SetNillableSessionID(v *string) *ARSessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ARSessionEventUpdateOne) SetAction(v string) *ARSessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ARSessionEventUpdateOne) SetNillableAction(v *string) *ARSessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ARSessionEventUpdateOne) SetMessage(v string) *ARSessionEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ARSessionEventUpdateOne) SetNillableMessage(v *string) *ARSessionEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ARSessionEventUpdateOne) ClearMessage() *ARSessionEventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ARSessionEventUpdateOne) SetDurationSecs(v int) *ARSessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ARSessionEventUpdateOne) SetNillableDurationSecs(v *int) *ARSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ARSessionEventUpdateOne) AddDurationSecs(v int) *ARSessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ARSessionEventMutation object of the builder.
func (_u *ARSessionEventUpdateOne) Mutation() *ARSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ARSessionEventUpdate builder.
func (_u *ARSessionEventUpdateOne) Where(ps ...predicate.ARSessionEvent) *ARSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ARSessionEventUpdateOne) Select(field string, fields ...string) *ARSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ARSessionEvent entity.
func (_u *ARSessionEventUpdateOne) Save(ctx context.Context) (*ARSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ARSessionEventUpdateOne) SaveX(ctx context.Context) *ARSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ARSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ARSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ARSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := arsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ARSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := arsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ARSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ARSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *ARSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(arsessionevent.Table, arsessionevent.Columns, sqlgraph.NewFieldSpec(arsessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ARSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, arsessionevent.FieldID)
		for _, f := range fields {
			if !arsessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != arsessionevent.FieldID {
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
		_spec.SetField(arsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(arsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(arsessionevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(arsessionevent.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(arsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(arsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &ARSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{arsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
