// Package intake runs the fixed-length adaptive diagnostic: a
// domain-balanced seed pass, an adaptive select/update loop under
// per-domain coverage quotas, and a final report with per-domain and
// per-section ability, predicted scores, and priority areas.
package intake

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/selector"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

// ErrSessionComplete signals that the session has no more items to
// administer: either the item budget is spent or every domain's pool
// is exhausted. Callers proceed to Result.
var ErrSessionComplete = errors.New("intake: session complete")

// ErrNoCurrentItem signals a Submit without a preceding Next.
var ErrNoCurrentItem = errors.New("intake: no item pending an answer")

// Phase is the diagnostic session state.
type Phase int

const (
	PhaseSeeding Phase = iota
	PhaseAdaptiveLoop
	PhaseFinalizing
	PhaseDone
)

// Config controls a diagnostic session.
type Config struct {
	// TotalItems is the session item budget.
	TotalItems int
	// MinPerDomain is the coverage quota every domain must reach
	// before the budget runs out.
	MinPerDomain int
	// Prior is the ability prior shared by all scopes.
	Prior ability.Prior
	// RepetitionDays carries the student's day-based exposure window
	// into the diagnostic; within-session repeats are always blocked.
	RepetitionDays int
	// Seed drives selection tie-breaks.
	Seed uint64
}

// DefaultConfig returns the standard 24-item diagnostic.
func DefaultConfig() Config {
	return Config{
		TotalItems:     24,
		MinPerDomain:   2,
		Prior:          ability.DefaultPrior(),
		RepetitionDays: 0,
		Seed:           1,
	}
}

// Session is a single diagnostic run for one student. It is not safe
// for concurrent use; a session is inherently sequential.
type Session struct {
	ID string

	cfg    Config
	pool   bank.Pool
	picker *selector.Selector
	eap    *ability.EAP

	phase     Phase
	asked     int
	current   *bank.Item
	exposures []selector.Exposure

	domains   []taxonomy.Domain
	seedIndex int

	byDomain  map[string][]ability.Response
	exhausted map[string]bool
}

// New creates a diagnostic session over the given pool.
func New(pool bank.Pool, cfg Config) *Session {
	def := DefaultConfig()
	if cfg.TotalItems <= 0 {
		cfg.TotalItems = def.TotalItems
	}
	if cfg.MinPerDomain < 0 {
		cfg.MinPerDomain = def.MinPerDomain
	}
	if cfg.Prior.SD <= 0 {
		cfg.Prior = def.Prior
	}
	return &Session{
		ID:        uuid.NewString(),
		cfg:       cfg,
		pool:      pool,
		picker:    selector.New(cfg.Seed),
		eap:       ability.NewEAP(cfg.Prior),
		phase:     PhaseSeeding,
		domains:   taxonomy.AllDomains(),
		byDomain:  make(map[string][]ability.Response),
		exhausted: make(map[string]bool),
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// ItemsAsked returns the number of items administered so far.
func (s *Session) ItemsAsked() int { return s.asked }

// Next returns the next item to administer. It returns
// ErrSessionComplete when the budget is spent or every domain pool is
// exhausted; the session then moves to finalizing and Result is valid.
func (s *Session) Next(now time.Time) (bank.Item, error) {
	if s.current != nil {
		return bank.Item{}, fmt.Errorf("intake: item %s still pending an answer", s.current.ID)
	}
	switch s.phase {
	case PhaseFinalizing, PhaseDone:
		return bank.Item{}, ErrSessionComplete
	}

	if s.asked >= s.cfg.TotalItems {
		s.phase = PhaseFinalizing
		return bank.Item{}, ErrSessionComplete
	}

	if s.phase == PhaseSeeding {
		if it, ok := s.nextSeed(now); ok {
			return it, nil
		}
		s.phase = PhaseAdaptiveLoop
	}

	it, ok := s.nextAdaptive(now)
	if !ok {
		// Pool exhausted before the budget: fall through to finalizing
		// with whatever was collected.
		s.phase = PhaseFinalizing
		return bank.Item{}, ErrSessionComplete
	}
	return it, nil
}

// Submit records the answer to the item returned by the last Next.
func (s *Session) Submit(correct bool, now time.Time) error {
	if s.current == nil {
		return ErrNoCurrentItem
	}
	it := *s.current

	// Validate before touching session state so a rejected submit
	// leaves nothing half-recorded.
	params, ok := it.Params()
	if !ok {
		return fmt.Errorf("intake: administered uncalibrated item %s", it.ID)
	}
	d, err := it.Domain()
	if err != nil {
		return fmt.Errorf("intake: item %s: %w", it.ID, err)
	}

	s.current = nil
	s.asked++
	s.exposures = append(s.exposures, selector.Exposure{ItemID: it.ID, At: now})
	s.byDomain[d.ID] = append(s.byDomain[d.ID], ability.Response{
		Item: params, Correct: correct, At: now,
	})
	return nil
}

// nextSeed serves one item per domain, targeting the prior mean, in
// taxonomy order. Domains without items are skipped.
func (s *Session) nextSeed(now time.Time) (bank.Item, bool) {
	for s.seedIndex < len(s.domains) {
		d := s.domains[s.seedIndex]
		s.seedIndex++
		it, err := s.pickInDomain(d.ID, ability.Estimate{Theta: s.cfg.Prior.Mean}, now)
		if err != nil {
			s.exhausted[d.ID] = true
			continue
		}
		s.current = &it
		return it, true
	}
	return bank.Item{}, false
}

// nextAdaptive picks the domain furthest from its measurement goal:
// under-quota domains first, then the domain with the highest ability
// SE. Returns false when every domain is exhausted.
func (s *Session) nextAdaptive(now time.Time) (bank.Item, bool) {
	for {
		d, ok := s.chooseDomain()
		if !ok {
			return bank.Item{}, false
		}
		est := s.eap.Estimate(s.byDomain[d])
		it, err := s.pickInDomain(d, est, now)
		if err != nil {
			s.exhausted[d] = true
			continue
		}
		s.current = &it
		return it, true
	}
}

func (s *Session) chooseDomain() (string, bool) {
	// Coverage quota first.
	for _, d := range s.domains {
		if s.exhausted[d.ID] {
			continue
		}
		if len(s.byDomain[d.ID]) < s.cfg.MinPerDomain {
			return d.ID, true
		}
	}
	// Then greatest remaining uncertainty.
	bestSE := -1.0
	var best string
	for _, d := range s.domains {
		if s.exhausted[d.ID] {
			continue
		}
		se := s.eap.Estimate(s.byDomain[d.ID]).SE
		if se > bestSE {
			bestSE = se
			best = d.ID
		}
	}
	return best, best != ""
}

// pickInDomain selects in one domain. Already-administered items are
// excluded outright so no item repeats within a session, and the
// domain scope is never relaxed: widening it would defeat the coverage
// quota. The diagnostic measures; it applies no challenge bias.
func (s *Session) pickInDomain(domainID string, est ability.Estimate, now time.Time) (bank.Item, error) {
	asked := make([]string, len(s.exposures))
	for i, e := range s.exposures {
		asked[i] = e.ItemID
	}
	filter := bank.Filter{DomainID: domainID, ExcludeIDs: asked}
	cfg := selector.Config{RepetitionDays: s.cfg.RepetitionDays}
	return s.picker.NextInScope(s.pool, filter, est, s.exposures, cfg, now)
}
