// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepmate/prepmate/ent/intakeevent"
)

// IntakeEventCreate is the builder for creating a IntakeEvent entity.
type IntakeEventCreate struct {
	config
	mutation *IntakeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *IntakeEventCreate) SetSequence(v int64) *IntakeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *IntakeEventCreate) SetTimestamp(v time.Time) *IntakeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *IntakeEventCreate) SetNillableTimestamp(v *time.Time) *IntakeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *IntakeEventCreate) SetSessionID(v string) *IntakeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *IntakeEventCreate) SetAction(v string) *IntakeEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetItemsAsked sets the "items_asked" field.
func (_c *IntakeEventCreate) SetItemsAsked(v int) *IntakeEventCreate {
	_c.mutation.SetItemsAsked(v)
	return _c
}

// SetCompositeLow sets the "composite_low" field.
func (_c *IntakeEventCreate) SetCompositeLow(v int) *IntakeEventCreate {
	_c.mutation.SetCompositeLow(v)
	return _c
}

// SetCompositeHigh sets the "composite_high" field.
func (_c *IntakeEventCreate) SetCompositeHigh(v int) *IntakeEventCreate {
	_c.mutation.SetCompositeHigh(v)
	return _c
}

// Mutation returns the IntakeEventMutation object of the builder.
func (_c *IntakeEventCreate) Mutation() *IntakeEventMutation {
	return _c.mutation
}

// Save creates the IntakeEvent in the database.
func (_c *IntakeEventCreate) Save(ctx context.Context) (*IntakeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntakeEventCreate) SaveX(ctx context.Context) *IntakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntakeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := intakeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntakeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "IntakeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "IntakeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "IntakeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := intakeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "IntakeEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := intakeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "IntakeEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemsAsked(); !ok {
		return &ValidationError{Name: "items_asked", err: errors.New(`ent: missing required field "IntakeEvent.items_asked"`)}
	}
	if _, ok := _c.mutation.CompositeLow(); !ok {
		return &ValidationError{Name: "composite_low", err: errors.New(`ent: missing required field "IntakeEvent.composite_low"`)}
	}
	if _, ok := _c.mutation.CompositeHigh(); !ok {
		return &ValidationError{Name: "composite_high", err: errors.New(`ent: missing required field "IntakeEvent.composite_high"`)}
	}
	return nil
}

func (_c *IntakeEventCreate) sqlSave(ctx context.Context) (*IntakeEvent, error) {
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

func (_c *IntakeEventCreate) createSpec() (*IntakeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &IntakeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intakeevent.Table, sqlgraph.NewFieldSpec(intakeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(intakeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(intakeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(intakeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(intakeevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ItemsAsked(); ok {
		_spec.SetField(intakeevent.FieldItemsAsked, field.TypeInt, value)
		_node.ItemsAsked = value
	}
	if value, ok := _c.mutation.CompositeLow(); ok {
		_spec.SetField(intakeevent.FieldCompositeLow, field.TypeInt, value)
		_node.CompositeLow = value
	}
	if value, ok := _c.mutation.CompositeHigh(); ok {
		_spec.SetField(intakeevent.FieldCompositeHigh, field.TypeInt, value)
		_node.CompositeHigh = value
	}
	return _node, _spec
}

// IntakeEventCreateBulk is the builder for creating many IntakeEvent entities in bulk.
type IntakeEventCreateBulk struct {
	config
	err      error
	builders []*IntakeEventCreate
}

// Save creates the IntakeEvent entities in the database.
func (_c *IntakeEventCreateBulk) Save(ctx context.Context) ([]*IntakeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntakeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntakeEventMutation)
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
func (_c *IntakeEventCreateBulk) SaveX(ctx context.Context) []*IntakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
