package selector

import (
	"errors"
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
)

func f(v float64) *float64 { return &v }

func item(id, skillID string, b float64) bank.Item {
	return bank.Item{
		ID: id, SkillID: skillID, Tier: bank.TierMedium,
		Format: bank.FormatMultipleChoice, Choices: 4,
		A: f(1.0), B: f(b), C: f(0.25),
	}
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNext_PicksMostInformative(t *testing.T) {
	pool := bank.NewBank([]bank.Item{
		item("far-low", "percentages", -2.5),
		item("near", "percentages", 0.1),
		item("far-high", "percentages", 2.5),
	})
	s := New(1)

	got, err := s.Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, nil, Config{}, now)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "near" {
		t.Errorf("picked %q, want the item nearest theta", got.ID)
	}
}

func TestNext_ChallengeBiasShiftsHarder(t *testing.T) {
	pool := bank.NewBank([]bank.Item{
		item("at-theta", "percentages", 0.0),
		item("harder", "percentages", 1.0),
	})
	s := New(1)

	unbiased, err := s.Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, nil, Config{}, now)
	if err != nil || unbiased.ID != "at-theta" {
		t.Fatalf("unbiased pick = %v, %v", unbiased.ID, err)
	}

	biased, err := s.Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, nil, Config{ChallengeBias: 1.0}, now)
	if err != nil || biased.ID != "harder" {
		t.Errorf("full-bias pick = %v, %v; want harder", biased.ID, err)
	}
}

func TestNext_ExposureWindows(t *testing.T) {
	pool := bank.NewBank([]bank.Item{
		item("fresh", "percentages", 0.5),
		item("recent-days", "percentages", 0.0),
		item("recent-count", "percentages", 0.0),
	})
	history := []Exposure{
		{ItemID: "recent-days", At: now.AddDate(0, 0, -2)},
		{ItemID: "recent-count", At: now.AddDate(0, 0, -30)},
	}
	cfg := Config{RepetitionDays: 7, RepetitionCount: 2}
	s := New(1)

	got, err := s.Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, history, cfg, now)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	// Both blocked items sit exactly at theta and would otherwise win.
	if got.ID != "fresh" {
		t.Errorf("picked %q, want the only item outside both windows", got.ID)
	}
}

func TestNext_IgnoresExposureWhenAllBlocked(t *testing.T) {
	pool := bank.NewBank([]bank.Item{item("only", "percentages", 0)})
	history := []Exposure{{ItemID: "only", At: now.AddDate(0, 0, -1)}}
	cfg := Config{RepetitionDays: 7, RepetitionCount: 5}

	got, err := New(1).Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, history, cfg, now)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "only" {
		t.Errorf("rung 2 should repeat the only item, got %q", got.ID)
	}
}

func TestNext_RelaxesContentConstraints(t *testing.T) {
	pool := bank.NewBank([]bank.Item{item("domain-mate", "data-distributions", 0)})
	filter := bank.Filter{DomainID: "problem-solving-data", SkillIDs: []string{"percentages"}}

	got, err := New(1).Next(pool, filter, ability.Estimate{Theta: 0}, nil, Config{}, now)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "domain-mate" {
		t.Errorf("skill->domain relaxation should find %q, got %q", "domain-mate", got.ID)
	}
}

func TestNext_PoolExhausted(t *testing.T) {
	pool := bank.NewBank(nil)
	_, err := New(1).Next(pool, bank.Filter{DomainID: "algebra"}, ability.Estimate{}, nil, Config{}, now)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("err = %v, want ErrPoolExhausted", err)
	}
}

func TestNext_TieBreakCoversAllTiedItems(t *testing.T) {
	// Identical parameters: every selection is an exact tie.
	pool := bank.NewBank([]bank.Item{
		item("t1", "percentages", 0),
		item("t2", "percentages", 0),
		item("t3", "percentages", 0),
	})
	s := New(42)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, err := s.Next(pool, bank.Filter{}, ability.Estimate{Theta: 0}, nil, Config{}, now)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		seen[got.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("tie-break visited %d of 3 tied items", len(seen))
	}
}
