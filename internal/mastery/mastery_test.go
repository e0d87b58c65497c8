package mastery

import (
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/bank"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// counters builds Counters practiced today with the given tallies.
func counters(correct, total, medCorrect, medTotal, hardCorrect, hardTotal int) Counters {
	return Counters{
		Total: total, Correct: correct,
		MediumPlusTotal: medTotal, MediumPlusCorrect: medCorrect,
		HardTotal: hardTotal, HardCorrect: hardCorrect,
		LastPracticed: now.Add(-time.Hour),
	}
}

func TestClassify_FamiliarBoundary(t *testing.T) {
	// Exactly 3 responses at exactly 50% accuracy is Familiar.
	// 3 responses cannot hit 50% exactly, so the canonical boundary
	// case is 2-of-4 alongside the 3-response minimum.
	if got := Classify(counters(2, 3, 0, 0, 0, 0), 0, now); got != Familiar {
		t.Errorf("2/3 (66%%) = %v, want Familiar", got)
	}
	if got := Classify(counters(2, 4, 0, 0, 0, 0), 0, now); got != Familiar {
		t.Errorf("2/4 (exactly 50%%) = %v, want Familiar", got)
	}
	if got := Classify(counters(49, 100, 0, 0, 0, 0), 0, now); got != NotStarted {
		t.Errorf("49%% accuracy = %v, want NotStarted", got)
	}
	if got := Classify(counters(2, 2, 0, 0, 0, 0), 0, now); got != NotStarted {
		t.Errorf("2 responses = %v, want NotStarted (needs 3)", got)
	}
}

func TestClassify_ProficientBoundary(t *testing.T) {
	base := counters(5, 5, 3, 4, 0, 0) // 75% on medium+
	if got := Classify(base, 0.0, now); got != Proficient {
		t.Errorf("met thresholds at theta 0 = %v, want Proficient", got)
	}
	if got := Classify(base, -0.01, now); got != Familiar {
		t.Errorf("theta below 0 = %v, want Familiar", got)
	}

	// Exactly 70% on medium+ with exactly 3 such responses: 7/10 won't
	// fit in 3, use the minimum qualifying grid.
	exact := counters(7, 10, 7, 10, 0, 0)
	if got := Classify(exact, 0, now); got != Proficient {
		t.Errorf("exactly 70%% medium+ = %v, want Proficient", got)
	}
	short := counters(4, 4, 2, 2, 0, 0) // only 2 medium+ responses
	if got := Classify(short, 1, now); got != Familiar {
		t.Errorf("too few medium+ responses = %v, want Familiar", got)
	}
	few := counters(4, 4, 3, 3, 0, 0) // 4 total, needs 5
	if got := Classify(few, 1, now); got != Familiar {
		t.Errorf("4 responses = %v, want Familiar", got)
	}
}

func TestClassify_MasteredBoundary(t *testing.T) {
	base := counters(8, 8, 6, 6, 4, 4)
	if got := Classify(base, 1.0, now); got != Mastered {
		t.Errorf("met thresholds at theta 1.0 = %v, want Mastered", got)
	}
	if got := Classify(base, 0.99, now); got != Proficient {
		t.Errorf("theta 0.99 = %v, want Proficient", got)
	}

	exactHard := counters(8, 10, 8, 10, 4, 5) // exactly 80% hard
	if got := Classify(exactHard, 1.5, now); got != Mastered {
		t.Errorf("exactly 80%% hard = %v, want Mastered", got)
	}
	lowHard := counters(8, 10, 8, 10, 3, 4) // 75% hard
	if got := Classify(lowHard, 1.5, now); got != Proficient {
		t.Errorf("75%% hard = %v, want Proficient", got)
	}

	stale := base
	stale.LastPracticed = now.AddDate(0, 0, -15)
	if got := Classify(stale, 1.5, now); got != Proficient {
		t.Errorf("practiced 15 days ago = %v, want Proficient (recency gate)", got)
	}
}

func TestClassify_EmptyCounters(t *testing.T) {
	if got := Classify(Counters{}, 2.0, now); got != NotStarted {
		t.Errorf("no responses = %v, want NotStarted", got)
	}
}

func TestTally(t *testing.T) {
	attempts := []Attempt{
		{Correct: true, Band: bank.TierEasy, At: now.Add(-3 * time.Hour)},
		{Correct: true, Band: bank.TierMedium, At: now.Add(-2 * time.Hour)},
		{Correct: false, Band: bank.TierMedium, At: now.Add(-90 * time.Minute)},
		{Correct: true, Band: bank.TierHard, At: now.Add(-time.Hour)},
	}
	c := Tally(attempts)
	if c.Total != 4 || c.Correct != 3 {
		t.Errorf("overall tally: %+v", c)
	}
	if c.MediumPlusTotal != 3 || c.MediumPlusCorrect != 2 {
		t.Errorf("medium+ tally: %+v", c)
	}
	if c.HardTotal != 1 || c.HardCorrect != 1 {
		t.Errorf("hard tally: %+v", c)
	}
	if !c.LastPracticed.Equal(now.Add(-time.Hour)) {
		t.Errorf("LastPracticed = %v", c.LastPracticed)
	}
}

func TestEffective_FreshKeepsStoredLevel(t *testing.T) {
	level, stale := Effective(Mastered, now.AddDate(0, 0, -13), now)
	if level != Mastered || stale {
		t.Errorf("fresh record = %v, stale=%v", level, stale)
	}
}

func TestEffective_StaleDropsOneLevel(t *testing.T) {
	cases := []struct {
		stored Level
		want   Level
	}{
		{Mastered, Proficient},
		{Proficient, Familiar},
		{Familiar, NotStarted},
	}
	last := now.AddDate(0, 0, -30)
	for _, tc := range cases {
		level, stale := Effective(tc.stored, last, now)
		if level != tc.want || !stale {
			t.Errorf("Effective(%v, stale) = %v, stale=%v; want %v, true", tc.stored, level, stale, tc.want)
		}
	}
}

func TestEffective_NotStartedNeverDecays(t *testing.T) {
	level, stale := Effective(NotStarted, time.Time{}, now)
	if level != NotStarted || stale {
		t.Errorf("NotStarted = %v, stale=%v", level, stale)
	}
}

func TestEffective_NeverPracticedIsStale(t *testing.T) {
	level, stale := Effective(Familiar, time.Time{}, now)
	if level != NotStarted || !stale {
		t.Errorf("zero LastPracticed = %v, stale=%v; want NotStarted, true", level, stale)
	}
}
