package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/irt"
	"github.com/prepmate/prepmate/internal/mastery"
	"github.com/prepmate/prepmate/internal/selector"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func histories(n int, correct bool) Histories {
	var h Histories
	for i := 0; i < n; i++ {
		r := ability.Response{
			Item:    irt.Params{A: 1, B: 0, C: 0.25},
			Correct: correct,
			At:      now.Add(-time.Duration(n-i) * time.Minute),
		}
		h.Skill = append(h.Skill, r)
		h.Domain = append(h.Domain, r)
		h.Section = append(h.Section, r)
		h.Attempts = append(h.Attempts, mastery.Attempt{
			Correct: correct, Band: bank.TierMedium, At: r.At,
		})
	}
	return h
}

func TestRecordResponse_Pipeline(t *testing.T) {
	e := Default(1)
	h := histories(5, true)

	u, err := e.RecordResponse("percentages", h, ability.Estimate{}, mastery.NotStarted, now)
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if u.Domain.ID != "problem-solving-data" {
		t.Errorf("Domain = %q", u.Domain.ID)
	}
	if u.Skill.Theta <= 0 {
		t.Errorf("all-correct skill theta = %v, want > 0", u.Skill.Theta)
	}
	if u.DomainAb.ResponseCount != 5 || u.Section.ResponseCount != 5 {
		t.Errorf("rollup counts: domain %d, section %d", u.DomainAb.ResponseCount, u.Section.ResponseCount)
	}
	if u.Score.Low < 200 || u.Score.High > 800 || u.Score.Low > u.Score.High {
		t.Errorf("score range: %+v", u.Score)
	}
	if u.Level != mastery.Proficient {
		t.Errorf("5/5 correct on medium at positive theta = %v, want Proficient", u.Level)
	}
	if u.Transition == nil || u.Transition.From != mastery.NotStarted || u.Transition.To != mastery.Proficient {
		t.Errorf("Transition = %+v", u.Transition)
	}
	if u.NeedsReview {
		t.Error("freshly practiced skill flagged for review")
	}
}

func TestRecordResponse_NoTransitionWhenLevelUnchanged(t *testing.T) {
	e := Default(1)
	h := histories(5, true)
	u, err := e.RecordResponse("percentages", h, ability.Estimate{Theta: 1, SE: 0.5, ResponseCount: 4}, mastery.Proficient, now)
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if u.Transition != nil {
		t.Errorf("unexpected transition: %+v", u.Transition)
	}
}

func TestRecordResponse_UnknownSkill(t *testing.T) {
	e := Default(1)
	if _, err := e.RecordResponse("no-such-skill", Histories{}, ability.Estimate{}, mastery.NotStarted, now); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestNextItem_UsesSettings(t *testing.T) {
	a, c := 1.0, 0.25
	b1, b2 := 0.0, 0.0
	pool := bank.NewBank([]bank.Item{
		{ID: "q1", SkillID: "percentages", Tier: bank.TierMedium, Format: bank.FormatMultipleChoice, Choices: 4, A: &a, B: &b1, C: &c},
		{ID: "q2", SkillID: "percentages", Tier: bank.TierMedium, Format: bank.FormatMultipleChoice, Choices: 4, A: &a, B: &b2, C: &c},
	})
	e := New(ability.NewEAP(ability.DefaultPrior()), ability.DefaultPrior(), DefaultSettings(), 7)

	history := []selector.Exposure{{ItemID: "q1", At: now.Add(-time.Hour)}}
	got, err := e.NextItem(pool, bank.Filter{}, ability.Estimate{Theta: 0}, history, now)
	if err != nil {
		t.Fatalf("NextItem: %v", err)
	}
	if got.ID != "q2" {
		t.Errorf("exposure window should block q1, got %q", got.ID)
	}
}

func TestNextItem_SurfacesExhaustion(t *testing.T) {
	e := Default(1)
	_, err := e.NextItem(bank.NewBank(nil), bank.Filter{}, ability.Estimate{}, nil, now)
	if !errors.Is(err, selector.ErrPoolExhausted) {
		t.Errorf("err = %v, want ErrPoolExhausted", err)
	}
}

func TestSettingsClamp(t *testing.T) {
	s := AdaptiveSettings{
		RepetitionTimeDays:      -1,
		RepetitionQuestionCount: -5,
		ChallengeBias:           1.7,
		ThetaUpdateWeight:       3.0,
	}.Clamp()
	def := DefaultSettings()
	if s.RepetitionTimeDays != def.RepetitionTimeDays || s.RepetitionQuestionCount != def.RepetitionQuestionCount {
		t.Errorf("windows: %+v", s)
	}
	if s.ChallengeBias != 1 || s.ThetaUpdateWeight != 2.0 {
		t.Errorf("bias/weight: %+v", s)
	}
	if s.StaleAfterDays != def.StaleAfterDays {
		t.Errorf("StaleAfterDays: %+v", s)
	}

	low := AdaptiveSettings{ThetaUpdateWeight: 0.1}.Clamp()
	if low.ThetaUpdateWeight != 0.5 {
		t.Errorf("weight floor: %v", low.ThetaUpdateWeight)
	}
}
