package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single scored item response. Item parameters
// are captured at response time so ability can be replayed even after
// the bank is recalibrated.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Practice or diagnostic session this response belongs to"),
		field.String("item_id").
			NotEmpty().
			Comment("Bank item administered"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill the item is tagged with"),
		field.String("domain_id").
			NotEmpty().
			Comment("Domain the skill rolls up to"),
		field.String("section").
			NotEmpty().
			Comment("math or reading-writing"),
		field.String("tier").
			Comment("easy, medium, or hard; empty for untagged items"),
		field.Bool("correct").
			Comment("Whether the response was scored correct"),
		field.Int("time_ms").
			Comment("Milliseconds to respond"),
		field.Float("discrimination").
			Comment("Item discrimination at response time"),
		field.Float("difficulty").
			Comment("Item difficulty at response time"),
		field.Float("guessing").
			Comment("Item guessing floor at response time"),
		field.Float("theta_after").
			Comment("Skill ability after folding this response in"),
		field.Float("standard_error").
			Comment("Standard error of theta_after"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("domain_id"),
		index.Fields("correct"),
	}
}
