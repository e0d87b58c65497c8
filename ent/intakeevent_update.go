// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/prepmate/ent/intakeevent"
	"github.com/prepmate/prepmate/ent/predicate"
)

// IntakeEventUpdate is the builder for updating IntakeEvent entities.
type IntakeEventUpdate struct {
	config
	hooks    []Hook
	mutation *IntakeEventMutation
}

// Where appends a list predicates to the IntakeEventUpdate builder.
func (_u *IntakeEventUpdate) Where(ps ...predicate.IntakeEvent) *IntakeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IntakeEventUpdate) SetSessionID(v string) *IntakeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IntakeEventUpdate) SetNillableSessionID(v *string) *IntakeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *IntakeEventUpdate) SetAction(v string) *IntakeEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *IntakeEventUpdate) SetNillableAction(v *string) *IntakeEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemsAsked sets the "items_asked" field.
func (_u *IntakeEventUpdate) SetItemsAsked(v int) *IntakeEventUpdate {
	_u.mutation.ResetItemsAsked()
	_u.mutation.SetItemsAsked(v)
	return _u
}

// SetNillableItemsAsked sets the "items_asked" field if the given value is not nil.
func (_u *IntakeEventUpdate) SetNillableItemsAsked(v *int) *IntakeEventUpdate {
	if v != nil {
		_u.SetItemsAsked(*v)
	}
	return _u
}

// AddItemsAsked adds value to the "items_asked" field.
func (_u *IntakeEventUpdate) AddItemsAsked(v int) *IntakeEventUpdate {
	_u.mutation.AddItemsAsked(v)
	return _u
}

// SetCompositeLow sets the "composite_low" field.
func (_u *IntakeEventUpdate) SetCompositeLow(v int) *IntakeEventUpdate {
	_u.mutation.ResetCompositeLow()
	_u.mutation.SetCompositeLow(v)
	return _u
}

// SetNillableCompositeLow sets the "composite_low" field if the given value is not nil.
func (_u *IntakeEventUpdate) SetNillableCompositeLow(v *int) *IntakeEventUpdate {
	if v != nil {
		_u.SetCompositeLow(*v)
	}
	return _u
}

// AddCompositeLow adds value to the "composite_low" field.
func (_u *IntakeEventUpdate) AddCompositeLow(v int) *IntakeEventUpdate {
	_u.mutation.AddCompositeLow(v)
	return _u
}

// SetCompositeHigh sets the "composite_high" field.
func (_u *IntakeEventUpdate) SetCompositeHigh(v int) *IntakeEventUpdate {
	_u.mutation.ResetCompositeHigh()
	_u.mutation.SetCompositeHigh(v)
	return _u
}

// SetNillableCompositeHigh sets the "composite_high" field if the given value is not nil.
func (_u *IntakeEventUpdate) SetNillableCompositeHigh(v *int) *IntakeEventUpdate {
	if v != nil {
		_u.SetCompositeHigh(*v)
	}
	return _u
}

// AddCompositeHigh adds value to the "composite_high" field.
func (_u *IntakeEventUpdate) AddCompositeHigh(v int) *IntakeEventUpdate {
	_u.mutation.AddCompositeHigh(v)
	return _u
}

// Mutation returns the IntakeEventMutation object of the builder.
func (_u *IntakeEventUpdate) Mutation() *IntakeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntakeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntakeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := intakeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := intakeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *IntakeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakeevent.Table, intakeevent.Columns, sqlgraph.NewFieldSpec(intakeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(intakeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(intakeevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsAsked(); ok {
		_spec.SetField(intakeevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAsked(); ok {
		_spec.AddField(intakeevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeLow(); ok {
		_spec.SetField(intakeevent.FieldCompositeLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompositeLow(); ok {
		_spec.AddField(intakeevent.FieldCompositeLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeHigh(); ok {
		_spec.SetField(intakeevent.FieldCompositeHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompositeHigh(); ok {
		_spec.AddField(intakeevent.FieldCompositeHigh, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntakeEventUpdateOne is the builder for updating a single IntakeEvent entity.
type IntakeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntakeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *IntakeEventUpdateOne) SetSessionID(v string) *IntakeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IntakeEventUpdateOne) SetNillableSessionID(v *string) *IntakeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *IntakeEventUpdateOne) SetAction(v string) *IntakeEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *IntakeEventUpdateOne) SetNillableAction(v *string) *IntakeEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemsAsked sets the "items_asked" field.
func (_u *IntakeEventUpdateOne) SetItemsAsked(v int) *IntakeEventUpdateOne {
	_u.mutation.ResetItemsAsked()
	_u.mutation.SetItemsAsked(v)
	return _u
}

// SetNillableItemsAsked sets the "items_asked" field if the given value is not nil.
func (_u *IntakeEventUpdateOne) SetNillableItemsAsked(v *int) *IntakeEventUpdateOne {
	if v != nil {
		_u.SetItemsAsked(*v)
	}
	return _u
}

// AddItemsAsked adds value to the "items_asked" field.
func (_u *IntakeEventUpdateOne) AddItemsAsked(v int) *IntakeEventUpdateOne {
	_u.mutation.AddItemsAsked(v)
	return _u
}

// SetCompositeLow sets the "composite_low" field.
func (_u *IntakeEventUpdateOne) SetCompositeLow(v int) *IntakeEventUpdateOne {
	_u.mutation.ResetCompositeLow()
	_u.mutation.SetCompositeLow(v)
	return _u
}

// SetNillableCompositeLow sets the "composite_low" field if the given value is not nil.
func (_u *IntakeEventUpdateOne) SetNillableCompositeLow(v *int) *IntakeEventUpdateOne {
	if v != nil {
		_u.SetCompositeLow(*v)
	}
	return _u
}

// AddCompositeLow adds value to the "composite_low" field.
func (_u *IntakeEventUpdateOne) AddCompositeLow(v int) *IntakeEventUpdateOne {
	_u.mutation.AddCompositeLow(v)
	return _u
}

// SetCompositeHigh sets the "composite_high" field.
func (_u *IntakeEventUpdateOne) SetCompositeHigh(v int) *IntakeEventUpdateOne {
	_u.mutation.ResetCompositeHigh()
	_u.mutation.SetCompositeHigh(v)
	return _u
}

// SetNillableCompositeHigh sets the "composite_high" field if the given value is not nil.
func (_u *IntakeEventUpdateOne) SetNillableCompositeHigh(v *int) *IntakeEventUpdateOne {
	if v != nil {
		_u.SetCompositeHigh(*v)
	}
	return _u
}

// AddCompositeHigh adds value to the "composite_high" field.
func (_u *IntakeEventUpdateOne) AddCompositeHigh(v int) *IntakeEventUpdateOne {
	_u.mutation.AddCompositeHigh(v)
	return _u
}

// Mutation returns the IntakeEventMutation object of the builder.
func (_u *IntakeEventUpdateOne) Mutation() *IntakeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntakeEventUpdate builder.
func (_u *IntakeEventUpdateOne) Where(ps ...predicate.IntakeEvent) *IntakeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntakeEventUpdateOne) Select(field string, fields ...string) *IntakeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntakeEvent entity.
func (_u *IntakeEventUpdateOne) Save(ctx context.Context) (*IntakeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeEventUpdateOne) SaveX(ctx context.Context) *IntakeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntakeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := intakeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := intakeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *IntakeEventUpdateOne) sqlSave(ctx context.Context) (_node *IntakeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakeevent.Table, intakeevent.Columns, sqlgraph.NewFieldSpec(intakeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntakeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intakeevent.FieldID)
		for _, f := range fields {
			if !intakeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intakeevent.FieldID {
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
		_spec.SetField(intakeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(intakeevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsAsked(); ok {
		_spec.SetField(intakeevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAsked(); ok {
		_spec.AddField(intakeevent.FieldItemsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeLow(); ok {
		_spec.SetField(intakeevent.FieldCompositeLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompositeLow(); ok {
		_spec.AddField(intakeevent.FieldCompositeLow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeHigh(); ok {
		_spec.SetField(intakeevent.FieldCompositeHigh, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompositeHigh(); ok {
		_spec.AddField(intakeevent.FieldCompositeHigh, field.TypeInt, value)
	}
	_node = &IntakeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
