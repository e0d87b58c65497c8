// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldItemID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSkillID, v))
}

// DomainID applies equality check predicate on the "domain_id" field. It's identical to DomainIDEQ.
func DomainID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDomainID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSection, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTier, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimeMs, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDiscrimination, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Guessing applies equality check predicate on the "guessing" field. It's identical to GuessingEQ.
func Guessing(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldGuessing, v))
}

// ThetaAfter applies equality check predicate on the "theta_after" field. It's identical to ThetaAfterEQ.
func ThetaAfter(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// StandardError applies equality check predicate on the "standard_error" field. It's identical to StandardErrorEQ.
func StandardError(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldStandardError, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldItemID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// DomainIDEQ applies the EQ predicate on the "domain_id" field.
func DomainIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDomainID, v))
}

// DomainIDNEQ applies the NEQ predicate on the "domain_id" field.
func DomainIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldDomainID, v))
}

// DomainIDIn applies the In predicate on the "domain_id" field.
func DomainIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldDomainID, vs...))
}

// DomainIDNotIn applies the NotIn predicate on the "domain_id" field.
func DomainIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldDomainID, vs...))
}

// DomainIDGT applies the GT predicate on the "domain_id" field.
func DomainIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldDomainID, v))
}

// DomainIDGTE applies the GTE predicate on the "domain_id" field.
func DomainIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldDomainID, v))
}

// DomainIDLT applies the LT predicate on the "domain_id" field.
func DomainIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldDomainID, v))
}

// DomainIDLTE applies the LTE predicate on the "domain_id" field.
func DomainIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldDomainID, v))
}

// DomainIDContains applies the Contains predicate on the "domain_id" field.
func DomainIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldDomainID, v))
}

// DomainIDHasPrefix applies the HasPrefix predicate on the "domain_id" field.
func DomainIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldDomainID, v))
}

// DomainIDHasSuffix applies the HasSuffix predicate on the "domain_id" field.
func DomainIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldDomainID, v))
}

// DomainIDEqualFold applies the EqualFold predicate on the "domain_id" field.
func DomainIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldDomainID, v))
}

// DomainIDContainsFold applies the ContainsFold predicate on the "domain_id" field.
func DomainIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldDomainID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSection, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldTier, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimeMs, v))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldDiscrimination, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldDifficulty, v))
}

// GuessingEQ applies the EQ predicate on the "guessing" field.
func GuessingEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldGuessing, v))
}

// GuessingNEQ applies the NEQ predicate on the "guessing" field.
func GuessingNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldGuessing, v))
}

// GuessingIn applies the In predicate on the "guessing" field.
func GuessingIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldGuessing, vs...))
}

// GuessingNotIn applies the NotIn predicate on the "guessing" field.
func GuessingNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldGuessing, vs...))
}

// GuessingGT applies the GT predicate on the "guessing" field.
func GuessingGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldGuessing, v))
}

// GuessingGTE applies the GTE predicate on the "guessing" field.
func GuessingGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldGuessing, v))
}

// GuessingLT applies the LT predicate on the "guessing" field.
func GuessingLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldGuessing, v))
}

// GuessingLTE applies the LTE predicate on the "guessing" field.
func GuessingLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldGuessing, v))
}

// ThetaAfterEQ applies the EQ predicate on the "theta_after" field.
func ThetaAfterEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// ThetaAfterNEQ applies the NEQ predicate on the "theta_after" field.
func ThetaAfterNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldThetaAfter, v))
}

// ThetaAfterIn applies the In predicate on the "theta_after" field.
func ThetaAfterIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldThetaAfter, vs...))
}

// ThetaAfterNotIn applies the NotIn predicate on the "theta_after" field.
func ThetaAfterNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldThetaAfter, vs...))
}

// ThetaAfterGT applies the GT predicate on the "theta_after" field.
func ThetaAfterGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldThetaAfter, v))
}

// ThetaAfterGTE applies the GTE predicate on the "theta_after" field.
func ThetaAfterGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldThetaAfter, v))
}

// ThetaAfterLT applies the LT predicate on the "theta_after" field.
func ThetaAfterLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldThetaAfter, v))
}

// ThetaAfterLTE applies the LTE predicate on the "theta_after" field.
func ThetaAfterLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldThetaAfter, v))
}

// StandardErrorEQ applies the EQ predicate on the "standard_error" field.
func StandardErrorEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldStandardError, v))
}

// StandardErrorNEQ applies the NEQ predicate on the "standard_error" field.
func StandardErrorNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldStandardError, v))
}

// StandardErrorIn applies the In predicate on the "standard_error" field.
func StandardErrorIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldStandardError, vs...))
}

// StandardErrorNotIn applies the NotIn predicate on the "standard_error" field.
func StandardErrorNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldStandardError, vs...))
}

// StandardErrorGT applies the GT predicate on the "standard_error" field.
func StandardErrorGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldStandardError, v))
}

// StandardErrorGTE applies the GTE predicate on the "standard_error" field.
func StandardErrorGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldStandardError, v))
}

// StandardErrorLT applies the LT predicate on the "standard_error" field.
func StandardErrorLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldStandardError, v))
}

// StandardErrorLTE applies the LTE predicate on the "standard_error" field.
func StandardErrorLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldStandardError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
