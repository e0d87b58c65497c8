package store

import (
	"context"
	"fmt"

	"github.com/prepmate/prepmate/ent"
	"github.com/prepmate/prepmate/ent/masteryevent"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetTheta(data.Theta)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}
	if !data.At.IsZero() {
		builder = builder.SetTimestamp(data.At)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save mastery event: %w", err)
	}
	return seqNum, nil
}

// MasteryHistory returns every stored level transition for a skill in
// log order.
func (r *eventRepo) MasteryHistory(ctx context.Context, skillID string) ([]MasteryEventData, error) {
	events, err := r.client.MasteryEvent.Query().
		Where(masteryevent.SkillID(skillID)).
		Order(ent.Asc(masteryevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery history: %w", err)
	}

	out := make([]MasteryEventData, len(events))
	for i, e := range events {
		out[i] = MasteryEventData{
			SkillID:   e.SkillID,
			FromLevel: e.FromLevel,
			ToLevel:   e.ToLevel,
			Theta:     e.Theta,
			SessionID: e.SessionID,
			At:        e.Timestamp,
		}
	}
	return out, nil
}

// StoredLevels returns each skill's latest recorded level label.
func (r *eventRepo) StoredLevels(ctx context.Context) (map[string]string, error) {
	events, err := r.client.MasteryEvent.Query().
		Order(ent.Asc(masteryevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stored levels: %w", err)
	}

	levels := make(map[string]string)
	for _, e := range events {
		levels[e.SkillID] = e.ToLevel
	}
	return levels, nil
}
