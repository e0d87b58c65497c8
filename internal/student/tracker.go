// Package student maintains one student's live state on top of the
// event log: it replays stored responses into ability histories, runs
// the per-response update pipeline, and appends the resulting events.
package student

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/engine"
	"github.com/prepmate/prepmate/internal/irt"
	"github.com/prepmate/prepmate/internal/mastery"
	"github.com/prepmate/prepmate/internal/selector"
	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

// SkillState is the tracked state for one skill.
type SkillState struct {
	Estimate      ability.Estimate
	Level         mastery.Level
	Counters      mastery.Counters
	LastPracticed time.Time
}

// Tracker holds a student's replayed history and current estimates.
// It is not safe for concurrent use.
type Tracker struct {
	engine *engine.Engine
	events store.EventRepo

	responses map[string][]ability.Response // by skill
	attempts  map[string][]mastery.Attempt  // by skill
	byDomain  map[string][]ability.Response
	bySection map[taxonomy.Section][]ability.Response
	exposures []selector.Exposure
	skills    map[string]SkillState
	lastSeq   int64
}

// NewTracker creates an empty tracker; call Load to replay history.
func NewTracker(eng *engine.Engine, events store.EventRepo) *Tracker {
	return &Tracker{
		engine:    eng,
		events:    events,
		responses: make(map[string][]ability.Response),
		attempts:  make(map[string][]mastery.Attempt),
		byDomain:  make(map[string][]ability.Response),
		bySection: make(map[taxonomy.Section][]ability.Response),
		skills:    make(map[string]SkillState),
	}
}

// Load replays the full response log into in-memory histories and
// estimates. Stored mastery levels come from the transition log, never
// from re-derivation, so a decayed skill keeps its earned level.
func (t *Tracker) Load(ctx context.Context) error {
	records, err := t.events.Responses(ctx, store.QueryOpts{})
	if err != nil {
		return fmt.Errorf("replay responses: %w", err)
	}

	for _, rec := range records {
		resp := ability.Response{
			Item: irt.Params{
				A: rec.Discrimination,
				B: rec.Difficulty,
				C: rec.Guessing,
			},
			Correct: rec.Correct,
			At:      rec.At,
		}
		t.fold(rec.SkillID, rec.DomainID, taxonomy.Section(rec.Section),
			resp, bank.DifficultyTier(rec.Tier), rec.ItemID)

		st := t.skills[rec.SkillID]
		st.Estimate = ability.Estimate{
			Theta:         rec.ThetaAfter,
			SE:            rec.SEAfter,
			ResponseCount: len(t.responses[rec.SkillID]),
		}
		st.Counters = mastery.Tally(t.attempts[rec.SkillID])
		st.LastPracticed = rec.At
		t.skills[rec.SkillID] = st

		t.lastSeq = rec.Sequence
	}

	levels, err := t.events.StoredLevels(ctx)
	if err != nil {
		return fmt.Errorf("replay levels: %w", err)
	}
	for skillID, label := range levels {
		st := t.skills[skillID]
		st.Level = mastery.ParseLevel(label)
		t.skills[skillID] = st
	}
	return nil
}

// fold appends one response to every history it belongs to.
func (t *Tracker) fold(skillID, domainID string, section taxonomy.Section, resp ability.Response, tier bank.DifficultyTier, itemID string) {
	t.responses[skillID] = append(t.responses[skillID], resp)
	t.attempts[skillID] = append(t.attempts[skillID], mastery.Attempt{
		Correct: resp.Correct,
		Band:    tier,
		At:      resp.At,
	})
	t.byDomain[domainID] = append(t.byDomain[domainID], resp)
	t.bySection[section] = append(t.bySection[section], resp)
	t.exposures = append(t.exposures, selector.Exposure{ItemID: itemID, At: resp.At})
}

// RecordResponse scores one response, runs the update pipeline, and
// appends the response event plus any mastery transition to the log.
func (t *Tracker) RecordResponse(ctx context.Context, sessionID string, item bank.Item, correct bool, elapsed time.Duration, now time.Time) (engine.Update, error) {
	params, ok := item.Params()
	if !ok {
		return engine.Update{}, fmt.Errorf("student: item %s is not calibrated", item.ID)
	}
	domain, err := item.Domain()
	if err != nil {
		return engine.Update{}, fmt.Errorf("student: item %s: %w", item.ID, err)
	}

	prev := t.skills[item.SkillID]

	resp := ability.Response{Item: params, Correct: correct, At: now}
	t.fold(item.SkillID, domain.ID, domain.Section, resp, item.Tier, item.ID)

	h := engine.Histories{
		Skill:    t.responses[item.SkillID],
		Domain:   t.byDomain[domain.ID],
		Section:  t.bySection[domain.Section],
		Attempts: t.attempts[item.SkillID],
	}
	u, err := t.engine.RecordResponse(item.SkillID, h, prev.Estimate, prev.Level, now)
	if err != nil {
		return engine.Update{}, err
	}

	t.skills[item.SkillID] = SkillState{
		Estimate:      u.Skill,
		Level:         u.Level,
		Counters:      mastery.Tally(t.attempts[item.SkillID]),
		LastPracticed: now,
	}

	seq, err := t.events.AppendResponse(ctx, store.ResponseEventData{
		SessionID:      sessionID,
		ItemID:         item.ID,
		SkillID:        item.SkillID,
		DomainID:       domain.ID,
		Section:        string(domain.Section),
		Tier:           string(item.Tier),
		Correct:        correct,
		TimeMs:         int(elapsed.Milliseconds()),
		Discrimination: params.A,
		Difficulty:     params.B,
		Guessing:       params.C,
		ThetaAfter:     u.Skill.Theta,
		SEAfter:        u.Skill.SE,
		At:             now,
	})
	if err != nil {
		return engine.Update{}, fmt.Errorf("append response: %w", err)
	}
	t.lastSeq = seq

	if u.Transition != nil {
		seq, err = t.events.AppendMastery(ctx, store.MasteryEventData{
			SkillID:   u.Transition.SkillID,
			FromLevel: u.Transition.From.Label(),
			ToLevel:   u.Transition.To.Label(),
			Theta:     u.Skill.Theta,
			SessionID: sessionID,
			At:        now,
		})
		if err != nil {
			return engine.Update{}, fmt.Errorf("append mastery transition: %w", err)
		}
		t.lastSeq = seq
	}
	return u, nil
}

// NextItem picks the next practice item under the engine's settings
// and the student's exposure history.
func (t *Tracker) NextItem(pool bank.Pool, filter bank.Filter, est ability.Estimate, now time.Time) (bank.Item, error) {
	return t.engine.NextItem(pool, filter, est, t.exposures, now)
}

// Skill returns the tracked state for a skill; the zero state for one
// never practiced.
func (t *Tracker) Skill(skillID string) SkillState {
	return t.skills[skillID]
}

// Skills returns the IDs of every skill with tracked state.
func (t *Tracker) Skills() []string {
	ids := make([]string, 0, len(t.skills))
	for id := range t.skills {
		ids = append(ids, id)
	}
	return ids
}

// DomainEstimate re-estimates ability for one domain from its pooled
// history.
func (t *Tracker) DomainEstimate(domainID string) ability.Estimate {
	return ability.NewEAP(ability.DefaultPrior()).Estimate(t.byDomain[domainID])
}

// SectionEstimate re-estimates ability for one section from its pooled
// history.
func (t *Tracker) SectionEstimate(section taxonomy.Section) ability.Estimate {
	return ability.NewEAP(ability.DefaultPrior()).Estimate(t.bySection[section])
}

// Exposures returns the item exposure history, oldest first.
func (t *Tracker) Exposures() []selector.Exposure {
	return t.exposures
}

// Snapshot builds a snapshot of the tracked state for persistence.
// Sequence is the last event folded in, replayed or appended, so a
// reader can tell whether the snapshot still matches the log head.
func (t *Tracker) Snapshot(now time.Time) *store.Snapshot {
	data := store.SnapshotData{
		Version:  1,
		Skills:   make(map[string]store.SkillState, len(t.skills)),
		Domains:  make(map[string]store.EstimateState, len(t.byDomain)),
		Sections: make(map[string]store.EstimateState, len(t.bySection)),
	}
	for id, st := range t.skills {
		data.Skills[id] = store.SkillState{
			Theta:         st.Estimate.Theta,
			SE:            st.Estimate.SE,
			ResponseCount: st.Estimate.ResponseCount,
			Level:         int(st.Level),
			Total:         st.Counters.Total,
			Correct:       st.Counters.Correct,
			MediumTotal:   st.Counters.MediumPlusTotal,
			MediumCorrect: st.Counters.MediumPlusCorrect,
			HardTotal:     st.Counters.HardTotal,
			HardCorrect:   st.Counters.HardCorrect,
			LastPracticed: st.LastPracticed,
		}
	}
	for id := range t.byDomain {
		est := t.DomainEstimate(id)
		data.Domains[id] = store.EstimateState{
			Theta: est.Theta, SE: est.SE, ResponseCount: est.ResponseCount,
		}
	}
	for section := range t.bySection {
		est := t.SectionEstimate(section)
		data.Sections[string(section)] = store.EstimateState{
			Theta: est.Theta, SE: est.SE, ResponseCount: est.ResponseCount,
		}
	}
	return &store.Snapshot{
		Sequence:  t.lastSeq,
		Timestamp: now,
		Data:      data,
	}
}
