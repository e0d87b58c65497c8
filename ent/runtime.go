// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepmate/prepmate/ent/intakeevent"
	"github.com/prepmate/prepmate/ent/masteryevent"
	"github.com/prepmate/prepmate/ent/responseevent"
	"github.com/prepmate/prepmate/ent/schema"
	"github.com/prepmate/prepmate/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	intakeeventMixin := schema.IntakeEvent{}.Mixin()
	intakeeventMixinFields0 := intakeeventMixin[0].Fields()
	_ = intakeeventMixinFields0
	intakeeventFields := schema.IntakeEvent{}.Fields()
	_ = intakeeventFields
	// intakeeventDescTimestamp is the schema descriptor for timestamp field.
	intakeeventDescTimestamp := intakeeventMixinFields0[1].Descriptor()
	// intakeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	intakeevent.DefaultTimestamp = intakeeventDescTimestamp.Default.(func() time.Time)
	// intakeeventDescSessionID is the schema descriptor for session_id field.
	intakeeventDescSessionID := intakeeventFields[0].Descriptor()
	// intakeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	intakeevent.SessionIDValidator = intakeeventDescSessionID.Validators[0].(func(string) error)
	// intakeeventDescAction is the schema descriptor for action field.
	intakeeventDescAction := intakeeventFields[1].Descriptor()
	// intakeevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	intakeevent.ActionValidator = intakeeventDescAction.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[0].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescFromLevel is the schema descriptor for from_level field.
	masteryeventDescFromLevel := masteryeventFields[1].Descriptor()
	// masteryevent.FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	masteryevent.FromLevelValidator = masteryeventDescFromLevel.Validators[0].(func(string) error)
	// masteryeventDescToLevel is the schema descriptor for to_level field.
	masteryeventDescToLevel := masteryeventFields[2].Descriptor()
	// masteryevent.ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	masteryevent.ToLevelValidator = masteryeventDescToLevel.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[1].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescSkillID is the schema descriptor for skill_id field.
	responseeventDescSkillID := responseeventFields[2].Descriptor()
	// responseevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	responseevent.SkillIDValidator = responseeventDescSkillID.Validators[0].(func(string) error)
	// responseeventDescDomainID is the schema descriptor for domain_id field.
	responseeventDescDomainID := responseeventFields[3].Descriptor()
	// responseevent.DomainIDValidator is a validator for the "domain_id" field. It is called by the builders before save.
	responseevent.DomainIDValidator = responseeventDescDomainID.Validators[0].(func(string) error)
	// responseeventDescSection is the schema descriptor for section field.
	responseeventDescSection := responseeventFields[4].Descriptor()
	// responseevent.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	responseevent.SectionValidator = responseeventDescSection.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
