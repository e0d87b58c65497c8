package bank

import "testing"

func f(v float64) *float64 { return &v }

func calibrated(id, skillID string, tier DifficultyTier, b float64) Item {
	return Item{
		ID: id, SkillID: skillID, Tier: tier,
		Format: FormatMultipleChoice, Choices: 4,
		A: f(1.0), B: f(b), C: f(0.25),
	}
}

func TestParse_Valid(t *testing.T) {
	raw := []byte(`{"items": [
		{"id": "q1", "skill_id": "percentages", "tier": "medium", "score_band": 4, "format": "multiple-choice", "choices": 4, "a": 1.0, "b": 0.2, "c": 0.25},
		{"id": "q2", "skill_id": "circles", "format": "free-response"}
	]}`)
	b, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if _, ok := items[0].Params(); !ok {
		t.Error("q1 should be calibrated")
	}
	if _, ok := items[1].Params(); ok {
		t.Error("q2 should not be calibrated")
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	raw := []byte(`{"items": [{"id": "q1", "format": "multiple-choice"}]}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected schema error for missing skill_id")
	}
}

func TestParse_UnknownSkill(t *testing.T) {
	raw := []byte(`{"items": [{"id": "q1", "skill_id": "nope", "format": "free-response"}]}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected error for unknown skill tag")
	}
}

func TestCandidates_FilterAndCalibration(t *testing.T) {
	b := NewBank([]Item{
		calibrated("q1", "percentages", TierMedium, 0),
		calibrated("q2", "percentages", TierHard, 1),
		calibrated("q3", "circles", TierMedium, 0),
		{ID: "q4", SkillID: "percentages", Format: FormatFreeResponse}, // uncalibrated
	})

	got := b.Candidates(Filter{SkillIDs: []string{"percentages"}})
	if len(got) != 2 {
		t.Fatalf("skill filter: got %d, want 2 (uncalibrated excluded)", len(got))
	}

	got = b.Candidates(Filter{DomainID: "problem-solving-data", Tier: TierHard})
	if len(got) != 1 || got[0].ID != "q2" {
		t.Errorf("domain+tier filter: got %v", got)
	}

	got = b.Candidates(Filter{ExcludeIDs: []string{"q1", "q2", "q3"}})
	if len(got) != 0 {
		t.Errorf("exclude filter: got %d, want 0", len(got))
	}
}

func TestFilter_Relax(t *testing.T) {
	filter := Filter{DomainID: "algebra", SkillIDs: []string{"linear-functions"}, Tier: TierEasy}

	relaxed, ok := filter.Relax()
	if !ok || relaxed.SkillIDs != nil {
		t.Fatalf("first relax should drop skills: %+v", relaxed)
	}
	relaxed, ok = relaxed.Relax()
	if !ok || relaxed.Tier != "" {
		t.Fatalf("second relax should drop tier: %+v", relaxed)
	}
	relaxed, ok = relaxed.Relax()
	if !ok || relaxed.DomainID != "" {
		t.Fatalf("third relax should drop domain: %+v", relaxed)
	}
	if _, ok := relaxed.Relax(); ok {
		t.Error("nothing left to relax")
	}
}
