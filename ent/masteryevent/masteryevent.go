// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryevent type in the database.
	Label = "mastery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldFromLevel holds the string denoting the from_level field in the database.
	FieldFromLevel = "from_level"
	// FieldToLevel holds the string denoting the to_level field in the database.
	FieldToLevel = "to_level"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the masteryevent in the database.
	Table = "mastery_events"
)

// Columns holds all SQL columns for masteryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSkillID,
	FieldFromLevel,
	FieldToLevel,
	FieldTheta,
	FieldSessionID,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	FromLevelValidator func(string) error
	// ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	ToLevelValidator func(string) error
)

// OrderOption defines the ordering options for the MasteryEvent queries.
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

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByFromLevel orders the results by the from_level field.
func ByFromLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromLevel, opts...).ToFunc()
}

// ByToLevel orders the results by the to_level field.
func ByToLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToLevel, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
