// Code generated by ent, DO NOT EDIT.

package intakeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the intakeevent type in the database.
	Label = "intake_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldItemsAsked holds the string denoting the items_asked field in the database.
	FieldItemsAsked = "items_asked"
	// FieldCompositeLow holds the string denoting the composite_low field in the database.
	FieldCompositeLow = "composite_low"
	// FieldCompositeHigh holds the string denoting the composite_high field in the database.
	FieldCompositeHigh = "composite_high"
	// Table holds the table name of the intakeevent in the database.
	Table = "intake_events"
)

// Columns holds all SQL columns for intakeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldItemsAsked,
	FieldCompositeLow,
	FieldCompositeHigh,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
)

// OrderOption defines the ordering options for the IntakeEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByItemsAsked orders the results by the items_asked field.
func ByItemsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsAsked, opts...).ToFunc()
}

// ByCompositeLow orders the results by the composite_low field.
func ByCompositeLow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeLow, opts...).ToFunc()
}

// ByCompositeHigh orders the results by the composite_high field.
func ByCompositeHigh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeHigh, opts...).ToFunc()
}
