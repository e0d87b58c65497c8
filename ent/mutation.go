// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/intakeevent"
	"github.com/prepmate/prepmate/ent/masteryevent"
	"github.com/prepmate/prepmate/ent/predicate"
	"github.com/prepmate/prepmate/ent/responseevent"
	"github.com/prepmate/prepmate/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIntakeEvent   = "IntakeEvent"
	TypeMasteryEvent  = "MasteryEvent"
	TypeResponseEvent = "ResponseEvent"
	TypeSnapshot      = "Snapshot"
)

// IntakeEventMutation represents an operation that mutates the IntakeEvent nodes in the graph.
type IntakeEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	action            *string
	items_asked       *int
	additems_asked    *int
	composite_low     *int
	addcomposite_low  *int
	composite_high    *int
	addcomposite_high *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*IntakeEvent, error)
	predicates        []predicate.IntakeEvent
}

var _ ent.Mutation = (*IntakeEventMutation)(nil)

// intakeeventOption allows management of the mutation configuration using functional options.
type intakeeventOption func(*IntakeEventMutation)

// newIntakeEventMutation creates new mutation for the IntakeEvent entity.
func newIntakeEventMutation(c config, op Op, opts ...intakeeventOption) *IntakeEventMutation {
	m := &IntakeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeIntakeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntakeEventID sets the ID field of the mutation.
func withIntakeEventID(id int) intakeeventOption {
	return func(m *IntakeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *IntakeEvent
		)
		m.oldValue = func(ctx context.Context) (*IntakeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntakeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntakeEvent sets the old IntakeEvent of the mutation.
func withIntakeEvent(node *IntakeEvent) intakeeventOption {
	return func(m *IntakeEventMutation) {
		m.oldValue = func(context.Context) (*IntakeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntakeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntakeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntakeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntakeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntakeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *IntakeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *IntakeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *IntakeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *IntakeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *IntakeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *IntakeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *IntakeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *IntakeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *IntakeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IntakeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IntakeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *IntakeEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *IntakeEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *IntakeEventMutation) ResetAction() {
	m.action = nil
}

// SetItemsAsked sets the "items_asked" field.
func (m *IntakeEventMutation) SetItemsAsked(i int) {
	m.items_asked = &i
	m.additems_asked = nil
}

// ItemsAsked returns the value of the "items_asked" field in the mutation.
func (m *IntakeEventMutation) ItemsAsked() (r int, exists bool) {
	v := m.items_asked
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsAsked returns the old "items_asked" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldItemsAsked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsAsked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsAsked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsAsked: %w", err)
	}
	return oldValue.ItemsAsked, nil
}

// AddItemsAsked adds i to the "items_asked" field.
func (m *IntakeEventMutation) AddItemsAsked(i int) {
	if m.additems_asked != nil {
		*m.additems_asked += i
	} else {
		m.additems_asked = &i
	}
}

// AddedItemsAsked returns the value that was added to the "items_asked" field in this mutation.
func (m *IntakeEventMutation) AddedItemsAsked() (r int, exists bool) {
	v := m.additems_asked
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsAsked resets all changes to the "items_asked" field.
func (m *IntakeEventMutation) ResetItemsAsked() {
	m.items_asked = nil
	m.additems_asked = nil
}

// SetCompositeLow sets the "composite_low" field.
func (m *IntakeEventMutation) SetCompositeLow(i int) {
	m.composite_low = &i
	m.addcomposite_low = nil
}

// CompositeLow returns the value of the "composite_low" field in the mutation.
func (m *IntakeEventMutation) CompositeLow() (r int, exists bool) {
	v := m.composite_low
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeLow returns the old "composite_low" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldCompositeLow(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeLow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeLow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeLow: %w", err)
	}
	return oldValue.CompositeLow, nil
}

// AddCompositeLow adds i to the "composite_low" field.
func (m *IntakeEventMutation) AddCompositeLow(i int) {
	if m.addcomposite_low != nil {
		*m.addcomposite_low += i
	} else {
		m.addcomposite_low = &i
	}
}

// AddedCompositeLow returns the value that was added to the "composite_low" field in this mutation.
func (m *IntakeEventMutation) AddedCompositeLow() (r int, exists bool) {
	v := m.addcomposite_low
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompositeLow resets all changes to the "composite_low" field.
func (m *IntakeEventMutation) ResetCompositeLow() {
	m.composite_low = nil
	m.addcomposite_low = nil
}

// SetCompositeHigh sets the "composite_high" field.
func (m *IntakeEventMutation) SetCompositeHigh(i int) {
	m.composite_high = &i
	m.addcomposite_high = nil
}

// CompositeHigh returns the value of the "composite_high" field in the mutation.
func (m *IntakeEventMutation) CompositeHigh() (r int, exists bool) {
	v := m.composite_high
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeHigh returns the old "composite_high" field's value of the IntakeEvent entity.
// If the IntakeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeEventMutation) OldCompositeHigh(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeHigh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeHigh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeHigh: %w", err)
	}
	return oldValue.CompositeHigh, nil
}

// AddCompositeHigh adds i to the "composite_high" field.
func (m *IntakeEventMutation) AddCompositeHigh(i int) {
	if m.addcomposite_high != nil {
		*m.addcomposite_high += i
	} else {
		m.addcomposite_high = &i
	}
}

// AddedCompositeHigh returns the value that was added to the "composite_high" field in this mutation.
func (m *IntakeEventMutation) AddedCompositeHigh() (r int, exists bool) {
	v := m.addcomposite_high
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompositeHigh resets all changes to the "composite_high" field.
func (m *IntakeEventMutation) ResetCompositeHigh() {
	m.composite_high = nil
	m.addcomposite_high = nil
}

// Where appends a list predicates to the IntakeEventMutation builder.
func (m *IntakeEventMutation) Where(ps ...predicate.IntakeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntakeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntakeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntakeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntakeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntakeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntakeEvent).
func (m *IntakeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntakeEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, intakeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, intakeevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, intakeevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, intakeevent.FieldAction)
	}
	if m.items_asked != nil {
		fields = append(fields, intakeevent.FieldItemsAsked)
	}
	if m.composite_low != nil {
		fields = append(fields, intakeevent.FieldCompositeLow)
	}
	if m.composite_high != nil {
		fields = append(fields, intakeevent.FieldCompositeHigh)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntakeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intakeevent.FieldSequence:
		return m.Sequence()
	case intakeevent.FieldTimestamp:
		return m.Timestamp()
	case intakeevent.FieldSessionID:
		return m.SessionID()
	case intakeevent.FieldAction:
		return m.Action()
	case intakeevent.FieldItemsAsked:
		return m.ItemsAsked()
	case intakeevent.FieldCompositeLow:
		return m.CompositeLow()
	case intakeevent.FieldCompositeHigh:
		return m.CompositeHigh()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntakeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intakeevent.FieldSequence:
		return m.OldSequence(ctx)
	case intakeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case intakeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case intakeevent.FieldAction:
		return m.OldAction(ctx)
	case intakeevent.FieldItemsAsked:
		return m.OldItemsAsked(ctx)
	case intakeevent.FieldCompositeLow:
		return m.OldCompositeLow(ctx)
	case intakeevent.FieldCompositeHigh:
		return m.OldCompositeHigh(ctx)
	}
	return nil, fmt.Errorf("unknown IntakeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intakeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case intakeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case intakeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case intakeevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case intakeevent.FieldItemsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsAsked(v)
		return nil
	case intakeevent.FieldCompositeLow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeLow(v)
		return nil
	case intakeevent.FieldCompositeHigh:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeHigh(v)
		return nil
	}
	return fmt.Errorf("unknown IntakeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntakeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, intakeevent.FieldSequence)
	}
	if m.additems_asked != nil {
		fields = append(fields, intakeevent.FieldItemsAsked)
	}
	if m.addcomposite_low != nil {
		fields = append(fields, intakeevent.FieldCompositeLow)
	}
	if m.addcomposite_high != nil {
		fields = append(fields, intakeevent.FieldCompositeHigh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntakeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intakeevent.FieldSequence:
		return m.AddedSequence()
	case intakeevent.FieldItemsAsked:
		return m.AddedItemsAsked()
	case intakeevent.FieldCompositeLow:
		return m.AddedCompositeLow()
	case intakeevent.FieldCompositeHigh:
		return m.AddedCompositeHigh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intakeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case intakeevent.FieldItemsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsAsked(v)
		return nil
	case intakeevent.FieldCompositeLow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompositeLow(v)
		return nil
	case intakeevent.FieldCompositeHigh:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompositeHigh(v)
		return nil
	}
	return fmt.Errorf("unknown IntakeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntakeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntakeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntakeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IntakeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntakeEventMutation) ResetField(name string) error {
	switch name {
	case intakeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case intakeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case intakeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case intakeevent.FieldAction:
		m.ResetAction()
		return nil
	case intakeevent.FieldItemsAsked:
		m.ResetItemsAsked()
		return nil
	case intakeevent.FieldCompositeLow:
		m.ResetCompositeLow()
		return nil
	case intakeevent.FieldCompositeHigh:
		m.ResetCompositeHigh()
		return nil
	}
	return fmt.Errorf("unknown IntakeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntakeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntakeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntakeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntakeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntakeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntakeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntakeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IntakeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntakeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IntakeEvent edge %s", name)
}

// MasteryEventMutation represents an operation that mutates the MasteryEvent nodes in the graph.
type MasteryEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	skill_id      *string
	from_level    *string
	to_level      *string
	theta         *float64
	addtheta      *float64
	session_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MasteryEvent, error)
	predicates    []predicate.MasteryEvent
}

var _ ent.Mutation = (*MasteryEventMutation)(nil)

// masteryeventOption allows management of the mutation configuration using functional options.
type masteryeventOption func(*MasteryEventMutation)

// newMasteryEventMutation creates new mutation for the MasteryEvent entity.
func newMasteryEventMutation(c config, op Op, opts ...masteryeventOption) *MasteryEventMutation {
	m := &MasteryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryEventID sets the ID field of the mutation.
func withMasteryEventID(id int) masteryeventOption {
	return func(m *MasteryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryEvent
		)
		m.oldValue = func(ctx context.Context) (*MasteryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryEvent sets the old MasteryEvent of the mutation.
func withMasteryEvent(node *MasteryEvent) masteryeventOption {
	return func(m *MasteryEventMutation) {
		m.oldValue = func(context.Context) (*MasteryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MasteryEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MasteryEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MasteryEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MasteryEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MasteryEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MasteryEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MasteryEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MasteryEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSkillID sets the "skill_id" field.
func (m *MasteryEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *MasteryEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *MasteryEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetFromLevel sets the "from_level" field.
func (m *MasteryEventMutation) SetFromLevel(s string) {
	m.from_level = &s
}

// FromLevel returns the value of the "from_level" field in the mutation.
func (m *MasteryEventMutation) FromLevel() (r string, exists bool) {
	v := m.from_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFromLevel returns the old "from_level" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldFromLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromLevel: %w", err)
	}
	return oldValue.FromLevel, nil
}

// ResetFromLevel resets all changes to the "from_level" field.
func (m *MasteryEventMutation) ResetFromLevel() {
	m.from_level = nil
}

// SetToLevel sets the "to_level" field.
func (m *MasteryEventMutation) SetToLevel(s string) {
	m.to_level = &s
}

// ToLevel returns the value of the "to_level" field in the mutation.
func (m *MasteryEventMutation) ToLevel() (r string, exists bool) {
	v := m.to_level
	if v == nil {
		return
	}
	return *v, true
}

// OldToLevel returns the old "to_level" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldToLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToLevel: %w", err)
	}
	return oldValue.ToLevel, nil
}

// ResetToLevel resets all changes to the "to_level" field.
func (m *MasteryEventMutation) ResetToLevel() {
	m.to_level = nil
}

// SetTheta sets the "theta" field.
func (m *MasteryEventMutation) SetTheta(f float64) {
	m.theta = &f
	m.addtheta = nil
}

// Theta returns the value of the "theta" field in the mutation.
func (m *MasteryEventMutation) Theta() (r float64, exists bool) {
	v := m.theta
	if v == nil {
		return
	}
	return *v, true
}

// OldTheta returns the old "theta" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldTheta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheta: %w", err)
	}
	return oldValue.Theta, nil
}

// AddTheta adds f to the "theta" field.
func (m *MasteryEventMutation) AddTheta(f float64) {
	if m.addtheta != nil {
		*m.addtheta += f
	} else {
		m.addtheta = &f
	}
}

// AddedTheta returns the value that was added to the "theta" field in this mutation.
func (m *MasteryEventMutation) AddedTheta() (r float64, exists bool) {
	v := m.addtheta
	if v == nil {
		return
	}
	return *v, true
}

// ResetTheta resets all changes to the "theta" field.
func (m *MasteryEventMutation) ResetTheta() {
	m.theta = nil
	m.addtheta = nil
}

// SetSessionID sets the "session_id" field.
func (m *MasteryEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MasteryEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *MasteryEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[masteryevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *MasteryEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[masteryevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MasteryEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, masteryevent.FieldSessionID)
}

// Where appends a list predicates to the MasteryEventMutation builder.
func (m *MasteryEventMutation) Where(ps ...predicate.MasteryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryEvent).
func (m *MasteryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, masteryevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, masteryevent.FieldTimestamp)
	}
	if m.skill_id != nil {
		fields = append(fields, masteryevent.FieldSkillID)
	}
	if m.from_level != nil {
		fields = append(fields, masteryevent.FieldFromLevel)
	}
	if m.to_level != nil {
		fields = append(fields, masteryevent.FieldToLevel)
	}
	if m.theta != nil {
		fields = append(fields, masteryevent.FieldTheta)
	}
	if m.session_id != nil {
		fields = append(fields, masteryevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryevent.FieldSequence:
		return m.Sequence()
	case masteryevent.FieldTimestamp:
		return m.Timestamp()
	case masteryevent.FieldSkillID:
		return m.SkillID()
	case masteryevent.FieldFromLevel:
		return m.FromLevel()
	case masteryevent.FieldToLevel:
		return m.ToLevel()
	case masteryevent.FieldTheta:
		return m.Theta()
	case masteryevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryevent.FieldSequence:
		return m.OldSequence(ctx)
	case masteryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case masteryevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case masteryevent.FieldFromLevel:
		return m.OldFromLevel(ctx)
	case masteryevent.FieldToLevel:
		return m.OldToLevel(ctx)
	case masteryevent.FieldTheta:
		return m.OldTheta(ctx)
	case masteryevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case masteryevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case masteryevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case masteryevent.FieldFromLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromLevel(v)
		return nil
	case masteryevent.FieldToLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToLevel(v)
		return nil
	case masteryevent.FieldTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheta(v)
		return nil
	case masteryevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, masteryevent.FieldSequence)
	}
	if m.addtheta != nil {
		fields = append(fields, masteryevent.FieldTheta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryevent.FieldSequence:
		return m.AddedSequence()
	case masteryevent.FieldTheta:
		return m.AddedTheta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case masteryevent.FieldTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTheta(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryevent.FieldSessionID) {
		fields = append(fields, masteryevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryEventMutation) ClearField(name string) error {
	switch name {
	case masteryevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryEventMutation) ResetField(name string) error {
	switch name {
	case masteryevent.FieldSequence:
		m.ResetSequence()
		return nil
	case masteryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case masteryevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case masteryevent.FieldFromLevel:
		m.ResetFromLevel()
		return nil
	case masteryevent.FieldToLevel:
		m.ResetToLevel()
		return nil
	case masteryevent.FieldTheta:
		m.ResetTheta()
		return nil
	case masteryevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryEvent edge %s", name)
}

// ResponseEventMutation represents an operation that mutates the ResponseEvent nodes in the graph.
type ResponseEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	item_id           *string
	skill_id          *string
	domain_id         *string
	section           *string
	tier              *string
	correct           *bool
	time_ms           *int
	addtime_ms        *int
	discrimination    *float64
	adddiscrimination *float64
	difficulty        *float64
	adddifficulty     *float64
	guessing          *float64
	addguessing       *float64
	theta_after       *float64
	addtheta_after    *float64
	standard_error    *float64
	addstandard_error *float64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ResponseEvent, error)
	predicates        []predicate.ResponseEvent
}

var _ ent.Mutation = (*ResponseEventMutation)(nil)

// responseeventOption allows management of the mutation configuration using functional options.
type responseeventOption func(*ResponseEventMutation)

// newResponseEventMutation creates new mutation for the ResponseEvent entity.
func newResponseEventMutation(c config, op Op, opts ...responseeventOption) *ResponseEventMutation {
	m := &ResponseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeResponseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseEventID sets the ID field of the mutation.
func withResponseEventID(id int) responseeventOption {
	return func(m *ResponseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ResponseEvent
		)
		m.oldValue = func(ctx context.Context) (*ResponseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResponseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponseEvent sets the old ResponseEvent of the mutation.
func withResponseEvent(node *ResponseEvent) responseeventOption {
	return func(m *ResponseEventMutation) {
		m.oldValue = func(context.Context) (*ResponseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResponseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ResponseEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ResponseEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ResponseEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ResponseEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ResponseEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ResponseEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ResponseEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ResponseEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ResponseEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResponseEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResponseEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ResponseEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ResponseEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ResponseEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *ResponseEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ResponseEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ResponseEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDomainID sets the "domain_id" field.
func (m *ResponseEventMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *ResponseEventMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *ResponseEventMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetSection sets the "section" field.
func (m *ResponseEventMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ResponseEventMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ResponseEventMutation) ResetSection() {
	m.section = nil
}

// SetTier sets the "tier" field.
func (m *ResponseEventMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ResponseEventMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ResponseEventMutation) ResetTier() {
	m.tier = nil
}

// SetCorrect sets the "correct" field.
func (m *ResponseEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ResponseEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ResponseEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *ResponseEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *ResponseEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *ResponseEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *ResponseEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *ResponseEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// SetDiscrimination sets the "discrimination" field.
func (m *ResponseEventMutation) SetDiscrimination(f float64) {
	m.discrimination = &f
	m.adddiscrimination = nil
}

// Discrimination returns the value of the "discrimination" field in the mutation.
func (m *ResponseEventMutation) Discrimination() (r float64, exists bool) {
	v := m.discrimination
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscrimination returns the old "discrimination" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldDiscrimination(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscrimination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscrimination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscrimination: %w", err)
	}
	return oldValue.Discrimination, nil
}

// AddDiscrimination adds f to the "discrimination" field.
func (m *ResponseEventMutation) AddDiscrimination(f float64) {
	if m.adddiscrimination != nil {
		*m.adddiscrimination += f
	} else {
		m.adddiscrimination = &f
	}
}

// AddedDiscrimination returns the value that was added to the "discrimination" field in this mutation.
func (m *ResponseEventMutation) AddedDiscrimination() (r float64, exists bool) {
	v := m.adddiscrimination
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscrimination resets all changes to the "discrimination" field.
func (m *ResponseEventMutation) ResetDiscrimination() {
	m.discrimination = nil
	m.adddiscrimination = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ResponseEventMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ResponseEventMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *ResponseEventMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ResponseEventMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ResponseEventMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetGuessing sets the "guessing" field.
func (m *ResponseEventMutation) SetGuessing(f float64) {
	m.guessing = &f
	m.addguessing = nil
}

// Guessing returns the value of the "guessing" field in the mutation.
func (m *ResponseEventMutation) Guessing() (r float64, exists bool) {
	v := m.guessing
	if v == nil {
		return
	}
	return *v, true
}

// OldGuessing returns the old "guessing" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldGuessing(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuessing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuessing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuessing: %w", err)
	}
	return oldValue.Guessing, nil
}

// AddGuessing adds f to the "guessing" field.
func (m *ResponseEventMutation) AddGuessing(f float64) {
	if m.addguessing != nil {
		*m.addguessing += f
	} else {
		m.addguessing = &f
	}
}

// AddedGuessing returns the value that was added to the "guessing" field in this mutation.
func (m *ResponseEventMutation) AddedGuessing() (r float64, exists bool) {
	v := m.addguessing
	if v == nil {
		return
	}
	return *v, true
}

// ResetGuessing resets all changes to the "guessing" field.
func (m *ResponseEventMutation) ResetGuessing() {
	m.guessing = nil
	m.addguessing = nil
}

// SetThetaAfter sets the "theta_after" field.
func (m *ResponseEventMutation) SetThetaAfter(f float64) {
	m.theta_after = &f
	m.addtheta_after = nil
}

// ThetaAfter returns the value of the "theta_after" field in the mutation.
func (m *ResponseEventMutation) ThetaAfter() (r float64, exists bool) {
	v := m.theta_after
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaAfter returns the old "theta_after" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldThetaAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaAfter: %w", err)
	}
	return oldValue.ThetaAfter, nil
}

// AddThetaAfter adds f to the "theta_after" field.
func (m *ResponseEventMutation) AddThetaAfter(f float64) {
	if m.addtheta_after != nil {
		*m.addtheta_after += f
	} else {
		m.addtheta_after = &f
	}
}

// AddedThetaAfter returns the value that was added to the "theta_after" field in this mutation.
func (m *ResponseEventMutation) AddedThetaAfter() (r float64, exists bool) {
	v := m.addtheta_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaAfter resets all changes to the "theta_after" field.
func (m *ResponseEventMutation) ResetThetaAfter() {
	m.theta_after = nil
	m.addtheta_after = nil
}

// SetStandardError sets the "standard_error" field.
func (m *ResponseEventMutation) SetStandardError(f float64) {
	m.standard_error = &f
	m.addstandard_error = nil
}

// StandardError returns the value of the "standard_error" field in the mutation.
func (m *ResponseEventMutation) StandardError() (r float64, exists bool) {
	v := m.standard_error
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardError returns the old "standard_error" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldStandardError(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardError: %w", err)
	}
	return oldValue.StandardError, nil
}

// AddStandardError adds f to the "standard_error" field.
func (m *ResponseEventMutation) AddStandardError(f float64) {
	if m.addstandard_error != nil {
		*m.addstandard_error += f
	} else {
		m.addstandard_error = &f
	}
}

// AddedStandardError returns the value that was added to the "standard_error" field in this mutation.
func (m *ResponseEventMutation) AddedStandardError() (r float64, exists bool) {
	v := m.addstandard_error
	if v == nil {
		return
	}
	return *v, true
}

// ResetStandardError resets all changes to the "standard_error" field.
func (m *ResponseEventMutation) ResetStandardError() {
	m.standard_error = nil
	m.addstandard_error = nil
}

// Where appends a list predicates to the ResponseEventMutation builder.
func (m *ResponseEventMutation) Where(ps ...predicate.ResponseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResponseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResponseEvent).
func (m *ResponseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseEventMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.sequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, responseevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, responseevent.FieldSessionID)
	}
	if m.item_id != nil {
		fields = append(fields, responseevent.FieldItemID)
	}
	if m.skill_id != nil {
		fields = append(fields, responseevent.FieldSkillID)
	}
	if m.domain_id != nil {
		fields = append(fields, responseevent.FieldDomainID)
	}
	if m.section != nil {
		fields = append(fields, responseevent.FieldSection)
	}
	if m.tier != nil {
		fields = append(fields, responseevent.FieldTier)
	}
	if m.correct != nil {
		fields = append(fields, responseevent.FieldCorrect)
	}
	if m.time_ms != nil {
		fields = append(fields, responseevent.FieldTimeMs)
	}
	if m.discrimination != nil {
		fields = append(fields, responseevent.FieldDiscrimination)
	}
	if m.difficulty != nil {
		fields = append(fields, responseevent.FieldDifficulty)
	}
	if m.guessing != nil {
		fields = append(fields, responseevent.FieldGuessing)
	}
	if m.theta_after != nil {
		fields = append(fields, responseevent.FieldThetaAfter)
	}
	if m.standard_error != nil {
		fields = append(fields, responseevent.FieldStandardError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.Sequence()
	case responseevent.FieldTimestamp:
		return m.Timestamp()
	case responseevent.FieldSessionID:
		return m.SessionID()
	case responseevent.FieldItemID:
		return m.ItemID()
	case responseevent.FieldSkillID:
		return m.SkillID()
	case responseevent.FieldDomainID:
		return m.DomainID()
	case responseevent.FieldSection:
		return m.Section()
	case responseevent.FieldTier:
		return m.Tier()
	case responseevent.FieldCorrect:
		return m.Correct()
	case responseevent.FieldTimeMs:
		return m.TimeMs()
	case responseevent.FieldDiscrimination:
		return m.Discrimination()
	case responseevent.FieldDifficulty:
		return m.Difficulty()
	case responseevent.FieldGuessing:
		return m.Guessing()
	case responseevent.FieldThetaAfter:
		return m.ThetaAfter()
	case responseevent.FieldStandardError:
		return m.StandardError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case responseevent.FieldSequence:
		return m.OldSequence(ctx)
	case responseevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case responseevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case responseevent.FieldItemID:
		return m.OldItemID(ctx)
	case responseevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case responseevent.FieldDomainID:
		return m.OldDomainID(ctx)
	case responseevent.FieldSection:
		return m.OldSection(ctx)
	case responseevent.FieldTier:
		return m.OldTier(ctx)
	case responseevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case responseevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	case responseevent.FieldDiscrimination:
		return m.OldDiscrimination(ctx)
	case responseevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case responseevent.FieldGuessing:
		return m.OldGuessing(ctx)
	case responseevent.FieldThetaAfter:
		return m.OldThetaAfter(ctx)
	case responseevent.FieldStandardError:
		return m.OldStandardError(ctx)
	}
	return nil, fmt.Errorf("unknown ResponseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case responseevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case responseevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case responseevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case responseevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case responseevent.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case responseevent.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case responseevent.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case responseevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case responseevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	case responseevent.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscrimination(v)
		return nil
	case responseevent.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case responseevent.FieldGuessing:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuessing(v)
		return nil
	case responseevent.FieldThetaAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaAfter(v)
		return nil
	case responseevent.FieldStandardError:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardError(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.addtime_ms != nil {
		fields = append(fields, responseevent.FieldTimeMs)
	}
	if m.adddiscrimination != nil {
		fields = append(fields, responseevent.FieldDiscrimination)
	}
	if m.adddifficulty != nil {
		fields = append(fields, responseevent.FieldDifficulty)
	}
	if m.addguessing != nil {
		fields = append(fields, responseevent.FieldGuessing)
	}
	if m.addtheta_after != nil {
		fields = append(fields, responseevent.FieldThetaAfter)
	}
	if m.addstandard_error != nil {
		fields = append(fields, responseevent.FieldStandardError)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.AddedSequence()
	case responseevent.FieldTimeMs:
		return m.AddedTimeMs()
	case responseevent.FieldDiscrimination:
		return m.AddedDiscrimination()
	case responseevent.FieldDifficulty:
		return m.AddedDifficulty()
	case responseevent.FieldGuessing:
		return m.AddedGuessing()
	case responseevent.FieldThetaAfter:
		return m.AddedThetaAfter()
	case responseevent.FieldStandardError:
		return m.AddedStandardError()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case responseevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	case responseevent.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscrimination(v)
		return nil
	case responseevent.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case responseevent.FieldGuessing:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGuessing(v)
		return nil
	case responseevent.FieldThetaAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaAfter(v)
		return nil
	case responseevent.FieldStandardError:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStandardError(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResponseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseEventMutation) ResetField(name string) error {
	switch name {
	case responseevent.FieldSequence:
		m.ResetSequence()
		return nil
	case responseevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case responseevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case responseevent.FieldItemID:
		m.ResetItemID()
		return nil
	case responseevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case responseevent.FieldDomainID:
		m.ResetDomainID()
		return nil
	case responseevent.FieldSection:
		m.ResetSection()
		return nil
	case responseevent.FieldTier:
		m.ResetTier()
		return nil
	case responseevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case responseevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	case responseevent.FieldDiscrimination:
		m.ResetDiscrimination()
		return nil
	case responseevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case responseevent.FieldGuessing:
		m.ResetGuessing()
		return nil
	case responseevent.FieldThetaAfter:
		m.ResetThetaAfter()
		return nil
	case responseevent.FieldStandardError:
		m.ResetStandardError()
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
