// Code generated by ent, DO NOT EDIT.

package intakeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldAction, v))
}

// ItemsAsked applies equality check predicate on the "items_asked" field. It's identical to ItemsAskedEQ.
func ItemsAsked(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldItemsAsked, v))
}

// CompositeLow applies equality check predicate on the "composite_low" field. It's identical to CompositeLowEQ.
func CompositeLow(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldCompositeLow, v))
}

// CompositeHigh applies equality check predicate on the "composite_high" field. It's identical to CompositeHighEQ.
func CompositeHigh(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldCompositeHigh, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldContainsFold(FieldAction, v))
}

// ItemsAskedEQ applies the EQ predicate on the "items_asked" field.
func ItemsAskedEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldItemsAsked, v))
}

// ItemsAskedNEQ applies the NEQ predicate on the "items_asked" field.
func ItemsAskedNEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldItemsAsked, v))
}

// ItemsAskedIn applies the In predicate on the "items_asked" field.
func ItemsAskedIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldItemsAsked, vs...))
}

// ItemsAskedNotIn applies the NotIn predicate on the "items_asked" field.
func ItemsAskedNotIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldItemsAsked, vs...))
}

// ItemsAskedGT applies the GT predicate on the "items_asked" field.
func ItemsAskedGT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldItemsAsked, v))
}

// ItemsAskedGTE applies the GTE predicate on the "items_asked" field.
func ItemsAskedGTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldItemsAsked, v))
}

// ItemsAskedLT applies the LT predicate on the "items_asked" field.
func ItemsAskedLT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldItemsAsked, v))
}

// ItemsAskedLTE applies the LTE predicate on the "items_asked" field.
func ItemsAskedLTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldItemsAsked, v))
}

// CompositeLowEQ applies the EQ predicate on the "composite_low" field.
func CompositeLowEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldCompositeLow, v))
}

// CompositeLowNEQ applies the NEQ predicate on the "composite_low" field.
func CompositeLowNEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldCompositeLow, v))
}

// CompositeLowIn applies the In predicate on the "composite_low" field.
func CompositeLowIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldCompositeLow, vs...))
}

// CompositeLowNotIn applies the NotIn predicate on the "composite_low" field.
func CompositeLowNotIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldCompositeLow, vs...))
}

// CompositeLowGT applies the GT predicate on the "composite_low" field.
func CompositeLowGT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldCompositeLow, v))
}

// CompositeLowGTE applies the GTE predicate on the "composite_low" field.
func CompositeLowGTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldCompositeLow, v))
}

// CompositeLowLT applies the LT predicate on the "composite_low" field.
func CompositeLowLT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldCompositeLow, v))
}

// CompositeLowLTE applies the LTE predicate on the "composite_low" field.
func CompositeLowLTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldCompositeLow, v))
}

// CompositeHighEQ applies the EQ predicate on the "composite_high" field.
func CompositeHighEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldEQ(FieldCompositeHigh, v))
}

// CompositeHighNEQ applies the NEQ predicate on the "composite_high" field.
func CompositeHighNEQ(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNEQ(FieldCompositeHigh, v))
}

// CompositeHighIn applies the In predicate on the "composite_high" field.
func CompositeHighIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldIn(FieldCompositeHigh, vs...))
}

// CompositeHighNotIn applies the NotIn predicate on the "composite_high" field.
func CompositeHighNotIn(vs ...int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldNotIn(FieldCompositeHigh, vs...))
}

// CompositeHighGT applies the GT predicate on the "composite_high" field.
func CompositeHighGT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGT(FieldCompositeHigh, v))
}

// CompositeHighGTE applies the GTE predicate on the "composite_high" field.
func CompositeHighGTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldGTE(FieldCompositeHigh, v))
}

// CompositeHighLT applies the LT predicate on the "composite_high" field.
func CompositeHighLT(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLT(FieldCompositeHigh, v))
}

// CompositeHighLTE applies the LTE predicate on the "composite_high" field.
func CompositeHighLTE(v int) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.FieldLTE(FieldCompositeHigh, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntakeEvent) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntakeEvent) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntakeEvent) predicate.IntakeEvent {
	return predicate.IntakeEvent(sql.NotPredicates(p))
}
