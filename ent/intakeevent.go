// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/intakeevent"
)

// IntakeEvent is the model entity for the IntakeEvent schema.
type IntakeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// started or completed
	Action string `json:"action,omitempty"`
	// ItemsAsked holds the value of the "items_asked" field.
	ItemsAsked int `json:"items_asked,omitempty"`
	// Lower bound of the predicted composite score
	CompositeLow int `json:"composite_low,omitempty"`
	// Upper bound of the predicted composite score
	CompositeHigh int `json:"composite_high,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntakeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intakeevent.FieldID, intakeevent.FieldSequence, intakeevent.FieldItemsAsked, intakeevent.FieldCompositeLow, intakeevent.FieldCompositeHigh:
			values[i] = new(sql.NullInt64)
		case intakeevent.FieldSessionID, intakeevent.FieldAction:
			values[i] = new(sql.NullString)
		case intakeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntakeEvent fields.
func (_m *IntakeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intakeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case intakeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case intakeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case intakeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case intakeevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case intakeevent.FieldItemsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_asked", values[i])
			} else if value.Valid {
				_m.ItemsAsked = int(value.Int64)
			}
		case intakeevent.FieldCompositeLow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field composite_low", values[i])
			} else if value.Valid {
				_m.CompositeLow = int(value.Int64)
			}
		case intakeevent.FieldCompositeHigh:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field composite_high", values[i])
			} else if value.Valid {
				_m.CompositeHigh = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntakeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *IntakeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IntakeEvent.
// Note that you need to call IntakeEvent.Unwrap() before calling this method if this IntakeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntakeEvent) Update() *IntakeEventUpdateOne {
	return NewIntakeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntakeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntakeEvent) Unwrap() *IntakeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntakeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntakeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("IntakeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("items_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsAsked))
	builder.WriteString(", ")
	builder.WriteString("composite_low=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompositeLow))
	builder.WriteString(", ")
	builder.WriteString("composite_high=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompositeHigh))
	builder.WriteByte(')')
	return builder.String()
}

// IntakeEvents is a parsable slice of IntakeEvent.
type IntakeEvents []*IntakeEvent
