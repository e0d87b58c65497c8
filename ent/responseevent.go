// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/responseevent"
)

// ResponseEvent is the model entity for the ResponseEvent schema.
type ResponseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Practice or diagnostic session this response belongs to
	SessionID string `json:"session_id,omitempty"`
	// Bank item administered
	ItemID string `json:"item_id,omitempty"`
	// Skill the item is tagged with
	SkillID string `json:"skill_id,omitempty"`
	// Domain the skill rolls up to
	DomainID string `json:"domain_id,omitempty"`
	// math or reading-writing
	Section string `json:"section,omitempty"`
	// easy, medium, or hard; empty for untagged items
	Tier string `json:"tier,omitempty"`
	// Whether the response was scored correct
	Correct bool `json:"correct,omitempty"`
	// Milliseconds to respond
	TimeMs int `json:"time_ms,omitempty"`
	// Item discrimination at response time
	Discrimination float64 `json:"discrimination,omitempty"`
	// Item difficulty at response time
	Difficulty float64 `json:"difficulty,omitempty"`
	// Item guessing floor at response time
	Guessing float64 `json:"guessing,omitempty"`
	// Skill ability after folding this response in
	ThetaAfter float64 `json:"theta_after,omitempty"`
	// Standard error of theta_after
	StandardError float64 `json:"standard_error,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResponseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case responseevent.FieldDiscrimination, responseevent.FieldDifficulty, responseevent.FieldGuessing, responseevent.FieldThetaAfter, responseevent.FieldStandardError:
			values[i] = new(sql.NullFloat64)
		case responseevent.FieldID, responseevent.FieldSequence, responseevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case responseevent.FieldSessionID, responseevent.FieldItemID, responseevent.FieldSkillID, responseevent.FieldDomainID, responseevent.FieldSection, responseevent.FieldTier:
			values[i] = new(sql.NullString)
		case responseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResponseEvent fields.
func (_m *ResponseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case responseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case responseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case responseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case responseevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case responseevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case responseevent.FieldDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = value.String
			}
		case responseevent.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case responseevent.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case responseevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case responseevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		case responseevent.FieldDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrimination", values[i])
			} else if value.Valid {
				_m.Discrimination = value.Float64
			}
		case responseevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case responseevent.FieldGuessing:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field guessing", values[i])
			} else if value.Valid {
				_m.Guessing = value.Float64
			}
		case responseevent.FieldThetaAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_after", values[i])
			} else if value.Valid {
				_m.ThetaAfter = value.Float64
			}
		case responseevent.FieldStandardError:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field standard_error", values[i])
			} else if value.Valid {
				_m.StandardError = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResponseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResponseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResponseEvent.
// Note that you need to call ResponseEvent.Unwrap() before calling this method if this ResponseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResponseEvent) Update() *ResponseEventUpdateOne {
	return NewResponseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResponseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResponseEvent) Unwrap() *ResponseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResponseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResponseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResponseEvent(")
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
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("domain_id=")
	builder.WriteString(_m.DomainID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("discrimination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Discrimination))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("guessing=")
	builder.WriteString(fmt.Sprintf("%v", _m.Guessing))
	builder.WriteString(", ")
	builder.WriteString("theta_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaAfter))
	builder.WriteString(", ")
	builder.WriteString("standard_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.StandardError))
	builder.WriteByte(')')
	return builder.String()
}

// ResponseEvents is a parsable slice of ResponseEvent.
type ResponseEvents []*ResponseEvent
