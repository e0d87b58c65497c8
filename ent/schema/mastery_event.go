package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a stored mastery level transition for audit and
// progress display.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.String("from_level").NotEmpty(),
		field.String("to_level").NotEmpty(),
		field.Float("theta").
			Comment("Skill ability at the time of the transition"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
