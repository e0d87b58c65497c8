// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the responseevent type in the database.
	Label = "response_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDomainID holds the string denoting the domain_id field in the database.
	FieldDomainID = "domain_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldDiscrimination holds the string denoting the discrimination field in the database.
	FieldDiscrimination = "discrimination"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldGuessing holds the string denoting the guessing field in the database.
	FieldGuessing = "guessing"
	// FieldThetaAfter holds the string denoting the theta_after field in the database.
	FieldThetaAfter = "theta_after"
	// FieldStandardError holds the string denoting the standard_error field in the database.
	FieldStandardError = "standard_error"
	// Table holds the table name of the responseevent in the database.
	Table = "response_events"
)

// Columns holds all SQL columns for responseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldItemID,
	FieldSkillID,
	FieldDomainID,
	FieldSection,
	FieldTier,
	FieldCorrect,
	FieldTimeMs,
	FieldDiscrimination,
	FieldDifficulty,
	FieldGuessing,
	FieldThetaAfter,
	FieldStandardError,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DomainIDValidator is a validator for the "domain_id" field. It is called by the builders before save.
	DomainIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
)

// OrderOption defines the ordering options for the ResponseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByDomainID orders the results by the domain_id field.
func ByDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByDiscrimination orders the results by the discrimination field.
func ByDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscrimination, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByGuessing orders the results by the guessing field.
func ByGuessing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessing, opts...).ToFunc()
}

// ByThetaAfter orders the results by the theta_after field.
func ByThetaAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaAfter, opts...).ToFunc()
}

// ByStandardError orders the results by the standard_error field.
func ByStandardError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardError, opts...).ToFunc()
}
