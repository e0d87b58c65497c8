package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/prepmate/ent"
	"github.com/prepmate/prepmate/ent/responseevent"
)

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetSkillID(data.SkillID).
		SetDomainID(data.DomainID).
		SetSection(data.Section).
		SetTier(data.Tier).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetDiscrimination(data.Discrimination).
		SetDifficulty(data.Difficulty).
		SetGuessing(data.Guessing).
		SetThetaAfter(data.ThetaAfter).
		SetStandardError(data.SEAfter)

	// The logical response time drives recency and decay; fall back to
	// the schema default only when the caller never stamped one.
	if !data.At.IsZero() {
		builder = builder.SetTimestamp(data.At)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save response event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) Responses(ctx context.Context, opts QueryOpts) ([]ResponseRecord, error) {
	events, err := applyQueryOpts(r.client.ResponseEvent.Query(), opts).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	records := make([]ResponseRecord, len(events))
	for i, e := range events {
		records[i] = toResponseRecord(e)
	}
	return records, nil
}

func (r *eventRepo) ResponsesForSkill(ctx context.Context, skillID string, opts QueryOpts) ([]ResponseRecord, error) {
	q := r.client.ResponseEvent.Query().
		Where(responseevent.SkillID(skillID))

	events, err := applyQueryOpts(q, opts).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses for skill: %w", err)
	}

	records := make([]ResponseRecord, len(events))
	for i, e := range events {
		records[i] = toResponseRecord(e)
	}
	return records, nil
}

func (r *eventRepo) RecentExposures(ctx context.Context, n int) ([]ResponseRecord, error) {
	events, err := r.client.ResponseEvent.Query().
		Order(ent.Desc(responseevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent exposures: %w", err)
	}

	records := make([]ResponseRecord, len(events))
	for i, e := range events {
		records[i] = toResponseRecord(e)
	}
	return records, nil
}

func (r *eventRepo) LatestResponseTime(ctx context.Context, skillID string) (time.Time, error) {
	e, err := r.client.ResponseEvent.Query().
		Where(responseevent.SkillID(skillID)).
		Order(ent.Desc(responseevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest response time: %w", err)
	}
	return e.Timestamp, nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, int, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.SkillID(skillID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

// applyQueryOpts narrows a response query by the sequence, time, and
// limit bounds in opts.
func applyQueryOpts(q *ent.ResponseEventQuery, opts QueryOpts) *ent.ResponseEventQuery {
	if opts.After > 0 {
		q = q.Where(responseevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(responseevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(responseevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(responseevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	return q
}

func toResponseRecord(e *ent.ResponseEvent) ResponseRecord {
	return ResponseRecord{
		Sequence: e.Sequence,
		ResponseEventData: ResponseEventData{
			SessionID:      e.SessionID,
			ItemID:         e.ItemID,
			SkillID:        e.SkillID,
			DomainID:       e.DomainID,
			Section:        e.Section,
			Tier:           e.Tier,
			Correct:        e.Correct,
			TimeMs:         e.TimeMs,
			Discrimination: e.Discrimination,
			Difficulty:     e.Difficulty,
			Guessing:       e.Guessing,
			ThetaAfter:     e.ThetaAfter,
			SEAfter:        e.StandardError,
			At:             e.Timestamp,
		},
	}
}
