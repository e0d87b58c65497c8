// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSkillID, v))
}

// FromLevel applies equality check predicate on the "from_level" field. It's identical to FromLevelEQ.
func FromLevel(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromLevel, v))
}

// ToLevel applies equality check predicate on the "to_level" field. It's identical to ToLevelEQ.
func ToLevel(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToLevel, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTheta, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// FromLevelEQ applies the EQ predicate on the "from_level" field.
func FromLevelEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromLevel, v))
}

// FromLevelNEQ applies the NEQ predicate on the "from_level" field.
func FromLevelNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldFromLevel, v))
}

// FromLevelIn applies the In predicate on the "from_level" field.
func FromLevelIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldFromLevel, vs...))
}

// FromLevelNotIn applies the NotIn predicate on the "from_level" field.
func FromLevelNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldFromLevel, vs...))
}

// FromLevelGT applies the GT predicate on the "from_level" field.
func FromLevelGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldFromLevel, v))
}

// FromLevelGTE applies the GTE predicate on the "from_level" field.
func FromLevelGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldFromLevel, v))
}

// FromLevelLT applies the LT predicate on the "from_level" field.
func FromLevelLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldFromLevel, v))
}

// FromLevelLTE applies the LTE predicate on the "from_level" field.
func FromLevelLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldFromLevel, v))
}

// FromLevelContains applies the Contains predicate on the "from_level" field.
func FromLevelContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldFromLevel, v))
}

// FromLevelHasPrefix applies the HasPrefix predicate on the "from_level" field.
func FromLevelHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldFromLevel, v))
}

// FromLevelHasSuffix applies the HasSuffix predicate on the "from_level" field.
func FromLevelHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldFromLevel, v))
}

// FromLevelEqualFold applies the EqualFold predicate on the "from_level" field.
func FromLevelEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldFromLevel, v))
}

// FromLevelContainsFold applies the ContainsFold predicate on the "from_level" field.
func FromLevelContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldFromLevel, v))
}

// ToLevelEQ applies the EQ predicate on the "to_level" field.
func ToLevelEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToLevel, v))
}

// ToLevelNEQ applies the NEQ predicate on the "to_level" field.
func ToLevelNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldToLevel, v))
}

// ToLevelIn applies the In predicate on the "to_level" field.
func ToLevelIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldToLevel, vs...))
}

// ToLevelNotIn applies the NotIn predicate on the "to_level" field.
func ToLevelNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldToLevel, vs...))
}

// ToLevelGT applies the GT predicate on the "to_level" field.
func ToLevelGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldToLevel, v))
}

// ToLevelGTE applies the GTE predicate on the "to_level" field.
func ToLevelGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldToLevel, v))
}

// ToLevelLT applies the LT predicate on the "to_level" field.
func ToLevelLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldToLevel, v))
}

// ToLevelLTE applies the LTE predicate on the "to_level" field.
func ToLevelLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldToLevel, v))
}

// ToLevelContains applies the Contains predicate on the "to_level" field.
func ToLevelContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldToLevel, v))
}

// ToLevelHasPrefix applies the HasPrefix predicate on the "to_level" field.
func ToLevelHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldToLevel, v))
}

// ToLevelHasSuffix applies the HasSuffix predicate on the "to_level" field.
func ToLevelHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldToLevel, v))
}

// ToLevelEqualFold applies the EqualFold predicate on the "to_level" field.
func ToLevelEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldToLevel, v))
}

// ToLevelContainsFold applies the ContainsFold predicate on the "to_level" field.
func ToLevelContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldToLevel, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTheta, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.NotPredicates(p))
}
