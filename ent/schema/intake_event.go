package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntakeEvent records the lifecycle of a diagnostic session: one row
// when it starts and one when it finalizes with predicted scores.
type IntakeEvent struct {
	ent.Schema
}

func (IntakeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (IntakeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("started or completed"),
		field.Int("items_asked"),
		field.Int("composite_low").
			Comment("Lower bound of the predicted composite score"),
		field.Int("composite_high").
			Comment("Upper bound of the predicted composite score"),
	}
}

func (IntakeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
