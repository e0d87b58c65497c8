// Package selector picks the next item to administer: the
// information-maximizing candidate at the learner's current ability,
// shifted by the tutor's challenge bias, under exposure control. When
// the pool runs dry it degrades in explicit steps and finally reports
// exhaustion rather than inventing an answer.
package selector

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/irt"
)

// ErrPoolExhausted signals that no item is available even after
// ignoring exposure windows and relaxing content constraints. Callers
// must branch on it; there is no nil-item success path.
var ErrPoolExhausted = errors.New("selector: candidate pool exhausted")

// challengeOffset is the theta shift applied at full challenge bias:
// bias 1.0 evaluates information one theta unit above the learner.
const challengeOffset = 1.0

// Config holds the per-student selection knobs, already validated by
// the caller.
type Config struct {
	// RepetitionDays blocks items administered within the last N days.
	RepetitionDays int
	// RepetitionCount blocks items among the last N administered.
	RepetitionCount int
	// ChallengeBias in [0,1] shifts scoring toward harder items.
	ChallengeBias float64
}

// Exposure records one past administration of an item to the student,
// ordered oldest first.
type Exposure struct {
	ItemID string
	At     time.Time
}

// Selector scores candidates and breaks exact ties randomly so a single
// item is not deterministically over-exposed.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector seeded from the given source; pass a fixed
// seed in tests for reproducible tie-breaks.
func New(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the best eligible item for the learner. The degradation
// ladder runs: (1) the filtered pool under exposure control, (2) the
// same pool ignoring exposure windows, (3) progressively relaxed
// content constraints. ErrPoolExhausted is returned when every rung
// fails.
func (s *Selector) Next(pool bank.Pool, filter bank.Filter, est ability.Estimate, history []Exposure, cfg Config, now time.Time) (bank.Item, error) {
	f := filter
	for {
		if it, err := s.NextInScope(pool, f, est, history, cfg, now); err == nil {
			return it, nil
		}
		relaxed, ok := f.Relax()
		if !ok {
			return bank.Item{}, ErrPoolExhausted
		}
		f = relaxed
	}
}

// NextInScope is Next without the content-relaxation rung: the filter
// holds exactly as given. The intake diagnostic uses it because its
// domain coverage quota depends on the scope not widening.
func (s *Selector) NextInScope(pool bank.Pool, filter bank.Filter, est ability.Estimate, history []Exposure, cfg Config, now time.Time) (bank.Item, error) {
	candidates := pool.Candidates(filter)

	if eligible := s.applyExposure(candidates, history, cfg, now); len(eligible) > 0 {
		if it, ok := s.pick(eligible, est, cfg); ok {
			return it, nil
		}
	}
	// Repeat an item rather than stall the session.
	if it, ok := s.pick(candidates, est, cfg); ok {
		return it, nil
	}
	return bank.Item{}, ErrPoolExhausted
}

// applyExposure removes candidates inside either exposure window. An
// item must clear both the day window and the count window to stay
// eligible.
func (s *Selector) applyExposure(candidates []bank.Item, history []Exposure, cfg Config, now time.Time) []bank.Item {
	blocked := make(map[string]bool)

	if cfg.RepetitionDays > 0 {
		cutoff := now.AddDate(0, 0, -cfg.RepetitionDays)
		for _, e := range history {
			if !e.At.Before(cutoff) {
				blocked[e.ItemID] = true
			}
		}
	}
	if cfg.RepetitionCount > 0 {
		start := len(history) - cfg.RepetitionCount
		if start < 0 {
			start = 0
		}
		for _, e := range history[start:] {
			blocked[e.ItemID] = true
		}
	}

	var eligible []bank.Item
	for _, it := range candidates {
		if !blocked[it.ID] {
			eligible = append(eligible, it)
		}
	}
	return eligible
}

// pick returns the information-maximizing candidate at the biased
// theta, breaking exact ties uniformly at random. ok is false when no
// calibrated candidate exists.
func (s *Selector) pick(candidates []bank.Item, est ability.Estimate, cfg Config) (bank.Item, bool) {
	target := est.Theta + cfg.ChallengeBias*challengeOffset

	best := -1.0
	var ties []bank.Item
	for _, it := range candidates {
		p, ok := it.Params()
		if !ok {
			continue
		}
		info := irt.ItemInformation(target, p)
		switch {
		case info > best:
			best = info
			ties = ties[:0]
			ties = append(ties, it)
		case info == best:
			ties = append(ties, it)
		}
	}
	if len(ties) == 0 {
		return bank.Item{}, false
	}
	return ties[s.rng.IntN(len(ties))], true
}
