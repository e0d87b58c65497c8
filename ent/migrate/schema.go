// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IntakeEventsColumns holds the columns for the "intake_events" table.
	IntakeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_asked", Type: field.TypeInt},
		{Name: "composite_low", Type: field.TypeInt},
		{Name: "composite_high", Type: field.TypeInt},
	}
	// IntakeEventsTable holds the schema information for the "intake_events" table.
	IntakeEventsTable = &schema.Table{
		Name:       "intake_events",
		Columns:    IntakeEventsColumns,
		PrimaryKey: []*schema.Column{IntakeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intakeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{IntakeEventsColumns[1]},
			},
			{
				Name:    "intakeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{IntakeEventsColumns[2]},
			},
			{
				Name:    "intakeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{IntakeEventsColumns[3]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeString},
		{Name: "to_level", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "discrimination", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "guessing", Type: field.TypeFloat64},
		{Name: "theta_after", Type: field.TypeFloat64},
		{Name: "standard_error", Type: field.TypeFloat64},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
			{
				Name:    "responseevent_domain_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[6]},
			},
			{
				Name:    "responseevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IntakeEventsTable,
		MasteryEventsTable,
		ResponseEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
