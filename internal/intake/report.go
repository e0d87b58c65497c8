package intake

import (
	"sort"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/scoring"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

// targetTheta is the practice-planning target each domain is compared
// against when ranking priority areas.
const targetTheta = 0.0

// DomainResult is the diagnosed ability for one domain.
type DomainResult struct {
	Domain   taxonomy.Domain
	Estimate ability.Estimate
}

// SectionResult is the diagnosed ability and predicted score for one
// section.
type SectionResult struct {
	Section  taxonomy.Section
	Estimate ability.Estimate
	Score    scoring.ScoreRange
}

// PriorityArea is a domain ranked by how far it sits below the
// practice target; the largest gaps come first.
type PriorityArea struct {
	Domain taxonomy.Domain
	Theta  float64
	Gap    float64
}

// Result is the final diagnostic report.
type Result struct {
	SessionID  string
	ItemsAsked int
	Domains    []DomainResult
	Sections   []SectionResult
	Composite  scoring.ScoreRange
	Priorities []PriorityArea
}

// Result finalizes the session and builds the report from whatever was
// collected. Domains that received no items report the bare prior.
func (s *Session) Result(now time.Time) *Result {
	if s.phase != PhaseDone {
		s.phase = PhaseFinalizing
	}

	r := &Result{SessionID: s.ID, ItemsAsked: s.asked}

	for _, d := range s.domains {
		est := s.eap.Estimate(s.byDomain[d.ID])
		r.Domains = append(r.Domains, DomainResult{Domain: d, Estimate: est})
		if est.Theta < targetTheta {
			r.Priorities = append(r.Priorities, PriorityArea{
				Domain: d,
				Theta:  est.Theta,
				Gap:    targetTheta - est.Theta,
			})
		}
	}
	sort.Slice(r.Priorities, func(i, j int) bool {
		if r.Priorities[i].Gap != r.Priorities[j].Gap {
			return r.Priorities[i].Gap > r.Priorities[j].Gap
		}
		return r.Priorities[i].Domain.ID < r.Priorities[j].Domain.ID
	})

	var sectionScores []scoring.ScoreRange
	for _, sec := range taxonomy.AllSections() {
		var union []ability.Response
		for _, d := range taxonomy.DomainsBySection(sec) {
			union = append(union, s.byDomain[d.ID]...)
		}
		est := scoring.EstimateSection(union, s.cfg.Prior)
		score := scoring.PredictSectionScore(est)
		r.Sections = append(r.Sections, SectionResult{Section: sec, Estimate: est, Score: score})
		sectionScores = append(sectionScores, score)
	}
	r.Composite = scoring.PredictCompositeScore(sectionScores...)

	s.phase = PhaseDone
	return r
}
