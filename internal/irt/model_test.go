package irt

import (
	"math"
	"testing"
)

func TestProbabilityCorrect_AtDifficulty(t *testing.T) {
	// At theta == b the probability is exactly (1+c)/2.
	p := Params{A: 1, B: 1, C: 0.25}
	got := ProbabilityCorrect(1, p)
	if math.Abs(got-0.625) > 1e-12 {
		t.Errorf("ProbabilityCorrect(theta=b) = %v, want 0.625", got)
	}
}

func TestProbabilityCorrect_Bounds(t *testing.T) {
	thetas := []float64{-6, -3, -1, 0, 1, 3, 6}
	params := []Params{
		{A: 0.5, B: -2, C: 0},
		{A: 1.0, B: 0, C: 0.25},
		{A: 2.5, B: 3, C: 0.2},
	}
	for _, p := range params {
		for _, th := range thetas {
			got := ProbabilityCorrect(th, p)
			if got < p.C || got > 1 {
				t.Errorf("ProbabilityCorrect(%v, %+v) = %v, outside [%v, 1]", th, p, got, p.C)
			}
		}
	}
}

func TestProbabilityCorrect_MonotoneInTheta(t *testing.T) {
	p := Params{A: 1.2, B: 0.5, C: 0.25}
	prev := ProbabilityCorrect(-4, p)
	for th := -3.5; th <= 4; th += 0.5 {
		cur := ProbabilityCorrect(th, p)
		if cur < prev {
			t.Errorf("probability decreased from %v to %v at theta=%v", prev, cur, th)
		}
		prev = cur
	}
}

func TestProbabilityIncorrect_Complement(t *testing.T) {
	p := Params{A: 1, B: -1, C: 0.2}
	sum := ProbabilityCorrect(0.3, p) + ProbabilityIncorrect(0.3, p)
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("P + Q = %v, want 1", sum)
	}
}

func TestItemInformation_NonNegativeFinite(t *testing.T) {
	params := []Params{
		{A: 1, B: 0, C: 0},
		{A: 1, B: 0, C: 0.25},
		{A: 2.5, B: -3, C: 0.45},
		{A: 0.5, B: 3, C: 0},
	}
	for _, p := range params {
		for th := -8.0; th <= 8; th += 0.25 {
			info := ItemInformation(th, p)
			if info < 0 || math.IsNaN(info) || math.IsInf(info, 0) {
				t.Fatalf("ItemInformation(%v, %+v) = %v", th, p, info)
			}
		}
	}
}

func TestItemInformation_PeaksNearDifficulty(t *testing.T) {
	p := Params{A: 1.5, B: 0.8, C: 0}
	near := ItemInformation(p.B, p)
	far := ItemInformation(p.B+3, p)
	veryFar := ItemInformation(p.B-3, p)
	if near <= far || near <= veryFar {
		t.Errorf("information at b (%v) should exceed far values (%v, %v)", near, far, veryFar)
	}
}

func TestItemInformation_GrowsWithDiscrimination(t *testing.T) {
	low := ItemInformation(0, Params{A: 0.8, B: 0, C: 0})
	high := ItemInformation(0, Params{A: 2.0, B: 0, C: 0})
	if high <= low {
		t.Errorf("information with a=2.0 (%v) should exceed a=0.8 (%v)", high, low)
	}
}

func TestStandardError(t *testing.T) {
	items := []Params{
		{A: 1, B: -1, C: 0},
		{A: 1, B: 0, C: 0},
		{A: 1, B: 1, C: 0},
	}
	info := TestInformation(0, items)
	se := StandardError(0, items)
	if math.Abs(se-1/math.Sqrt(info)) > 1e-12 {
		t.Errorf("StandardError = %v, want %v", se, 1/math.Sqrt(info))
	}

	if !math.IsInf(StandardError(0, nil), 1) {
		t.Error("StandardError with no items should be +Inf")
	}
}

func TestStandardError_DecreasesWithMoreItems(t *testing.T) {
	item := Params{A: 1, B: 0, C: 0}
	var items []Params
	prev := math.Inf(1)
	for i := 0; i < 10; i++ {
		items = append(items, item)
		se := StandardError(0, items)
		if se >= prev {
			t.Errorf("SE did not decrease at %d items: %v >= %v", len(items), se, prev)
		}
		prev = se
	}
}
