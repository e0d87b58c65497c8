package intake

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/sim"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// fullBank builds a bank with per-skill items across the difficulty
// range, enough to feed a whole diagnostic.
func fullBank(t *testing.T) *bank.Bank {
	t.Helper()
	var items []bank.Item
	for _, skill := range taxonomy.AllSkills() {
		for i, b := range []float64{-2, -1, 0, 1, 2} {
			a, bb, c := 1.0, b, 0.25
			items = append(items, bank.Item{
				ID:      fmt.Sprintf("%s-%d", skill.ID, i),
				SkillID: skill.ID,
				Tier:    bank.TierMedium,
				Format:  bank.FormatMultipleChoice,
				Choices: 4,
				A:       &a, B: &bb, C: &c,
			})
		}
	}
	return bank.NewBank(items)
}

// runSession drives a full session with a simulated learner.
func runSession(t *testing.T, s *Session, learner *sim.Learner) *Result {
	t.Helper()
	clock := now
	for {
		it, err := s.Next(clock)
		if errors.Is(err, ErrSessionComplete) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		p, ok := it.Params()
		if !ok {
			t.Fatalf("uncalibrated item served: %s", it.ID)
		}
		if err := s.Submit(learner.Answer(p), clock); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		clock = clock.Add(time.Minute)
	}
	return s.Result(clock)
}

func TestSession_FullRun(t *testing.T) {
	s := New(fullBank(t), DefaultConfig())
	res := runSession(t, s, sim.NewLearner(1.0, 99))

	if s.Phase() != PhaseDone {
		t.Errorf("phase = %v, want PhaseDone", s.Phase())
	}
	if res.ItemsAsked != DefaultConfig().TotalItems {
		t.Errorf("ItemsAsked = %d, want %d", res.ItemsAsked, DefaultConfig().TotalItems)
	}

	// Coverage quota: every domain saw at least MinPerDomain items.
	for _, dr := range res.Domains {
		if dr.Estimate.ResponseCount < DefaultConfig().MinPerDomain {
			t.Errorf("domain %s got %d items, quota is %d",
				dr.Domain.ID, dr.Estimate.ResponseCount, DefaultConfig().MinPerDomain)
		}
	}

	if len(res.Sections) != 2 {
		t.Fatalf("sections = %d", len(res.Sections))
	}
	for _, sr := range res.Sections {
		if sr.Score.Low < 200 || sr.Score.High > 800 {
			t.Errorf("section %s score %+v out of scale", sr.Section, sr.Score)
		}
	}
	if res.Composite.Low < 400 || res.Composite.High > 1600 {
		t.Errorf("composite %+v out of scale", res.Composite)
	}
}

func TestSession_EstimateTracksAbleLearner(t *testing.T) {
	// A strong learner's diagnosed section thetas should land clearly
	// above a weak learner's.
	cfg := DefaultConfig()
	cfg.TotalItems = 40

	strong := runSession(t, New(fullBank(t), cfg), sim.NewLearner(1.5, 7))
	weak := runSession(t, New(fullBank(t), cfg), sim.NewLearner(-1.5, 7))

	for i := range strong.Sections {
		if strong.Sections[i].Estimate.Theta <= weak.Sections[i].Estimate.Theta {
			t.Errorf("section %s: strong %v <= weak %v",
				strong.Sections[i].Section,
				strong.Sections[i].Estimate.Theta,
				weak.Sections[i].Estimate.Theta)
		}
	}
}

func TestSession_PrioritiesRankWeakDomainsFirst(t *testing.T) {
	res := runSession(t, New(fullBank(t), DefaultConfig()), sim.NewLearner(-1.5, 11))
	if len(res.Priorities) == 0 {
		t.Fatal("a weak learner should produce priority areas")
	}
	for i := 1; i < len(res.Priorities); i++ {
		if res.Priorities[i].Gap > res.Priorities[i-1].Gap {
			t.Errorf("priorities not ranked by gap: %v after %v",
				res.Priorities[i].Gap, res.Priorities[i-1].Gap)
		}
	}
}

func TestSession_NoRepeatsWithinSession(t *testing.T) {
	s := New(fullBank(t), DefaultConfig())
	learner := sim.NewLearner(0, 3)
	seen := make(map[string]bool)
	clock := now
	for {
		it, err := s.Next(clock)
		if errors.Is(err, ErrSessionComplete) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if seen[it.ID] {
			t.Fatalf("item %s administered twice", it.ID)
		}
		seen[it.ID] = true
		p, _ := it.Params()
		if err := s.Submit(learner.Answer(p), clock); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		clock = clock.Add(time.Minute)
	}
}

func TestSession_PoolExhaustionFinalizesEarly(t *testing.T) {
	// Tiny bank: two items in one domain, nothing anywhere else.
	a, c := 1.0, 0.25
	b1, b2 := -0.5, 0.5
	tiny := bank.NewBank([]bank.Item{
		{ID: "q1", SkillID: "percentages", Tier: bank.TierMedium, Format: bank.FormatMultipleChoice, Choices: 4, A: &a, B: &b1, C: &c},
		{ID: "q2", SkillID: "percentages", Tier: bank.TierMedium, Format: bank.FormatMultipleChoice, Choices: 4, A: &a, B: &b2, C: &c},
	})

	s := New(tiny, DefaultConfig())
	res := runSession(t, s, sim.NewLearner(0, 5))
	if res.ItemsAsked != 2 {
		t.Errorf("ItemsAsked = %d, want 2 (early finalize)", res.ItemsAsked)
	}
	if s.Phase() != PhaseDone {
		t.Errorf("phase = %v, want PhaseDone", s.Phase())
	}
}

func TestSession_SubmitWithoutNext(t *testing.T) {
	s := New(fullBank(t), DefaultConfig())
	if err := s.Submit(true, now); !errors.Is(err, ErrNoCurrentItem) {
		t.Errorf("err = %v, want ErrNoCurrentItem", err)
	}
}

func TestSession_RejectedSubmitLeavesStateUntouched(t *testing.T) {
	s := New(fullBank(t), DefaultConfig())

	// Force an uncalibrated pending item; Submit must reject it without
	// consuming the item budget or recording an exposure.
	s.current = &bank.Item{ID: "raw-1", SkillID: "percentages", Tier: bank.TierMedium}
	if err := s.Submit(true, now); err == nil {
		t.Fatal("expected error for uncalibrated item")
	}
	if s.asked != 0 {
		t.Errorf("asked = %d, want 0", s.asked)
	}
	if len(s.exposures) != 0 {
		t.Errorf("exposures = %d, want 0", len(s.exposures))
	}
	if s.current == nil {
		t.Error("pending item cleared by rejected submit")
	}
}

func TestSession_NextTwiceWithoutSubmit(t *testing.T) {
	s := New(fullBank(t), DefaultConfig())
	if _, err := s.Next(now); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if _, err := s.Next(now); err == nil {
		t.Error("second Next without Submit should error")
	}
}
