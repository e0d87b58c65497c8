package calibration

import (
	"math"
	"testing"

	"github.com/prepmate/prepmate/internal/bank"
)

func TestScoreBandToDifficulty_Monotone(t *testing.T) {
	prev := math.Inf(-1)
	for band := 1; band <= 8; band++ {
		b := ScoreBandToDifficulty(band)
		if b <= prev {
			t.Errorf("band %d: difficulty %v not increasing (prev %v)", band, b, prev)
		}
		prev = b
	}

	// Spot-check the linear transform convention.
	if got := ScoreBandToDifficulty(1); math.Abs(got-(-3.5*5/7)) > 1e-12 {
		t.Errorf("band 1 = %v, want %v", got, -3.5*5/7)
	}
	if got := ScoreBandToDifficulty(8); math.Abs(got-(3.5*5/7)) > 1e-12 {
		t.Errorf("band 8 = %v, want %v", got, 3.5*5/7)
	}
}

func TestDiscriminationForTier_Ordered(t *testing.T) {
	easy := DiscriminationForTier(bank.TierEasy)
	medium := DiscriminationForTier(bank.TierMedium)
	hard := DiscriminationForTier(bank.TierHard)
	if !(easy < medium && medium < hard) {
		t.Errorf("tier discriminations not ordered: %v, %v, %v", easy, medium, hard)
	}
	if DiscriminationForTier("") != DiscriminationDefault {
		t.Error("unknown tier should get the default discrimination")
	}
}

func TestGuessingForFormat(t *testing.T) {
	if got := GuessingForFormat(bank.FormatMultipleChoice, 4); got != 0.25 {
		t.Errorf("4-option MC guessing = %v, want 0.25", got)
	}
	if got := GuessingForFormat(bank.FormatMultipleChoice, 5); got != 0.2 {
		t.Errorf("5-option MC guessing = %v, want 0.2", got)
	}
	if got := GuessingForFormat(bank.FormatFreeResponse, 0); got != 0 {
		t.Errorf("free response guessing = %v, want 0", got)
	}
	if got := GuessingForFormat(bank.FormatMultipleChoice, 0); got != DefaultGuessing {
		t.Errorf("unknown choice count = %v, want default", got)
	}
}

func TestRun_Idempotent(t *testing.T) {
	items := []bank.Item{
		{ID: "q1", SkillID: "percentages", Tier: bank.TierMedium, ScoreBand: 3, Format: bank.FormatMultipleChoice, Choices: 4},
		{ID: "q2", SkillID: "circles", Tier: bank.TierHard, Format: bank.FormatFreeResponse},
	}

	first := Run(items)
	if first.ItemsTouched != 2 || first.FieldsSet != 6 {
		t.Fatalf("first run: %+v", first)
	}

	second := Run(items)
	if second.ItemsTouched != 0 || second.FieldsSet != 0 {
		t.Errorf("second run should be a no-op: %+v", second)
	}
}

func TestCalibrate_KeepsExistingValidParams(t *testing.T) {
	a, b, c := 1.7, -0.4, 0.2
	it := bank.Item{ID: "q", SkillID: "circles", Tier: bank.TierEasy, ScoreBand: 8,
		Format: bank.FormatMultipleChoice, Choices: 4, A: &a, B: &b, C: &c}
	if n := Calibrate(&it); n != 0 {
		t.Errorf("touched %d fields of a calibrated item", n)
	}
	if *it.A != 1.7 || *it.B != -0.4 || *it.C != 0.2 {
		t.Errorf("existing parameters overwritten: %+v", it)
	}
}

func TestCalibrate_ReplacesInvalidParams(t *testing.T) {
	badA, badC := -0.5, 1.2
	it := bank.Item{ID: "q", SkillID: "circles", Tier: bank.TierMedium,
		Format: bank.FormatMultipleChoice, Choices: 4, A: &badA, C: &badC}
	Calibrate(&it)
	if *it.A != DiscriminationMedium {
		t.Errorf("invalid a not replaced: %v", *it.A)
	}
	if *it.C != 0.25 {
		t.Errorf("invalid c not replaced: %v", *it.C)
	}
	if *it.A <= 0 || *it.C < 0 || *it.C >= 1 {
		t.Error("calibrated parameters would break the probability model")
	}
}

func TestCoverage(t *testing.T) {
	a := 1.0
	items := []bank.Item{
		{ID: "q1", A: &a},
		{ID: "q2"},
	}
	rep := Coverage(items)
	if rep.Items != 2 {
		t.Errorf("Items = %d", rep.Items)
	}
	if rep.Discrimination.Populated != 1 || rep.Discrimination.Fraction != 0.5 {
		t.Errorf("Discrimination stats: %+v", rep.Discrimination)
	}
	if rep.Discrimination.Min != 1 || rep.Discrimination.Max != 1 || rep.Discrimination.Mean != 1 {
		t.Errorf("Discrimination min/max/mean: %+v", rep.Discrimination)
	}
	if rep.Difficulty.Populated != 0 {
		t.Errorf("Difficulty should be empty: %+v", rep.Difficulty)
	}
}
