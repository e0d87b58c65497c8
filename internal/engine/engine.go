// Package engine wires the per-response pipeline together: a scored
// response flows into ability re-estimation, rolls up through domain
// and section, and re-derives the skill's mastery level. The engine is
// a stateless computation layer; callers hand it history snapshots and
// persist what it returns.
package engine

import (
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/mastery"
	"github.com/prepmate/prepmate/internal/scoring"
	"github.com/prepmate/prepmate/internal/selector"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

// Engine holds the configured strategy and knobs for one student. It
// carries no mutable state; concurrent use for different students is
// safe, and per-student serialization is the caller's concern.
type Engine struct {
	estimator ability.Estimator
	prior     ability.Prior
	settings  AdaptiveSettings
	picker    *selector.Selector
}

// New creates an Engine. Settings are clamped to their documented
// ranges.
func New(est ability.Estimator, prior ability.Prior, settings AdaptiveSettings, seed uint64) *Engine {
	return &Engine{
		estimator: est,
		prior:     prior,
		settings:  settings.Clamp(),
		picker:    selector.New(seed),
	}
}

// Default creates an Engine with the EAP estimator, standard prior, and
// default settings.
func Default(seed uint64) *Engine {
	return New(ability.NewEAP(ability.DefaultPrior()), ability.DefaultPrior(), DefaultSettings(), seed)
}

// Settings returns the engine's clamped settings.
func (e *Engine) Settings() AdaptiveSettings { return e.settings }

// Histories are the response snapshots a single update recomputes from:
// the affected skill's full history plus the unions for its domain and
// section. Attempts carry the difficulty bands for mastery tallying.
type Histories struct {
	Skill    []ability.Response
	Domain   []ability.Response
	Section  []ability.Response
	Attempts []mastery.Attempt
}

// Update is everything the caller persists after one response.
type Update struct {
	SkillID  string
	Domain   taxonomy.Domain
	Skill    ability.Estimate
	DomainAb ability.Estimate
	Section  ability.Estimate
	Score    scoring.ScoreRange

	Level       mastery.Level
	Effective   mastery.Level
	NeedsReview bool
	Transition  *mastery.Transition
}

// RecordResponse recomputes all estimates affected by one new response.
// prevSkill is the previously stored skill estimate (zero value for a
// first response); prevLevel the previously stored mastery level. The
// response itself must already be included in the supplied histories.
func (e *Engine) RecordResponse(skillID string, h Histories, prevSkill ability.Estimate, prevLevel mastery.Level, now time.Time) (Update, error) {
	domain, err := taxonomy.DomainOf(skillID)
	if err != nil {
		return Update{}, err
	}

	skillEst := scoring.UpdateSkill(prevSkill, h.Skill, e.estimator, e.settings.ThetaUpdateWeight)
	domainEst := scoring.EstimateDomain(h.Domain, e.prior)
	sectionEst := scoring.EstimateSection(h.Section, e.prior)

	counters := mastery.Tally(h.Attempts)
	level := mastery.Classify(counters, skillEst.Theta, now)
	effective, stale := mastery.EffectiveWithThreshold(level, counters.LastPracticed, now, e.settings.StaleAfterDays)

	u := Update{
		SkillID:     skillID,
		Domain:      domain,
		Skill:       skillEst,
		DomainAb:    domainEst,
		Section:     sectionEst,
		Score:       scoring.PredictSectionScore(sectionEst),
		Level:       level,
		Effective:   effective,
		NeedsReview: stale,
	}
	if level != prevLevel {
		u.Transition = &mastery.Transition{SkillID: skillID, From: prevLevel, To: level}
	}
	return u, nil
}

// NextItem picks the next item for the student under the engine's
// settings. It surfaces selector.ErrPoolExhausted unchanged; callers
// must branch on it.
func (e *Engine) NextItem(pool bank.Pool, filter bank.Filter, est ability.Estimate, history []selector.Exposure, now time.Time) (bank.Item, error) {
	cfg := selector.Config{
		RepetitionDays:  e.settings.RepetitionTimeDays,
		RepetitionCount: e.settings.RepetitionQuestionCount,
		ChallengeBias:   e.settings.ChallengeBias,
	}
	return e.picker.Next(pool, filter, est, history, cfg, now)
}
