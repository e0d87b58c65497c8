// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/prepmate/ent/masteryevent"
	"github.com/prepmate/prepmate/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdate) SetFromLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdate) SetToLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *MasteryEventUpdate) SetTheta(v float64) *MasteryEventUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTheta(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *MasteryEventUpdate) AddTheta(v float64) *MasteryEventUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := masteryevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := masteryevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdateOne) SetFromLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdateOne) SetToLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *MasteryEventUpdateOne) SetTheta(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTheta(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *MasteryEventUpdateOne) AddTheta(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := masteryevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := masteryevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
