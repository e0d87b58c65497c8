// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IntakeEvent is the predicate function for intakeevent builders.
type IntakeEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// ResponseEvent is the predicate function for responseevent builders.
type ResponseEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
