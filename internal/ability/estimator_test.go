package ability

import (
	"math"
	"testing"

	"github.com/prepmate/prepmate/internal/irt"
)

// spread builds one response per difficulty in bs, all with a=1 c=0.25.
func spread(correct bool, bs ...float64) []Response {
	rs := make([]Response, len(bs))
	for i, b := range bs {
		rs[i] = Response{Item: irt.Params{A: 1, B: b, C: 0.25}, Correct: correct}
	}
	return rs
}

func TestEAP_EmptyHistoryReturnsPrior(t *testing.T) {
	prior := Prior{Mean: 0.3, SD: 1.2}
	est := NewEAP(prior).Estimate(nil)
	if est.Theta != prior.Mean || est.SE != prior.SD || est.ResponseCount != 0 {
		t.Errorf("empty history = %+v, want exactly the prior", est)
	}
}

func TestEAP_AllCorrectPullsWellAboveP(t *testing.T) {
	est := NewEAP(DefaultPrior()).Estimate(spread(true, -2, -1, 0, 1, 2))
	if est.Theta <= 0.5 {
		t.Errorf("five varied correct answers: theta = %v, want > 0.5", est.Theta)
	}
}

func TestEAP_AllIncorrectPullsWellBelow(t *testing.T) {
	est := NewEAP(DefaultPrior()).Estimate(spread(false, -2, -1, 0, 1, 2))
	if est.Theta >= -1.0 {
		t.Errorf("five varied incorrect answers: theta = %v, want < -1.0", est.Theta)
	}
}

func TestEAP_DifficultySensitive(t *testing.T) {
	// A correct answer on a hard item moves the estimate up more than a
	// correct answer on an easy item.
	eap := NewEAP(DefaultPrior())
	easy := eap.Estimate(spread(true, -2))
	hard := eap.Estimate(spread(true, 2))
	if hard.Theta <= easy.Theta {
		t.Errorf("correct on hard (%v) should exceed correct on easy (%v)", hard.Theta, easy.Theta)
	}
}

func TestEAP_SEStrictlyDecreases(t *testing.T) {
	eap := NewEAP(DefaultPrior())
	item := irt.Params{A: 1, B: 0, C: 0}

	history := func(n int) []Response {
		rs := make([]Response, n)
		for i := range rs {
			rs[i] = Response{Item: item, Correct: i%2 == 0}
		}
		return rs
	}

	se1 := eap.Estimate(history(1)).SE
	se5 := eap.Estimate(history(5)).SE
	se10 := eap.Estimate(history(10)).SE
	if !(se1 > se5 && se5 > se10) {
		t.Errorf("SE not strictly decreasing: %v, %v, %v", se1, se5, se10)
	}
	if se1 >= DefaultPrior().SD {
		t.Errorf("one response should already shrink SE below the prior: %v", se1)
	}
}

func TestEAP_BoundedByGrid(t *testing.T) {
	// Even an absurd history keeps the estimate inside the clamp bounds.
	est := NewEAP(DefaultPrior()).Estimate(spread(true, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3))
	if est.Theta < ThetaFloor || est.Theta > ThetaCeil {
		t.Errorf("theta %v outside [%v, %v]", est.Theta, ThetaFloor, ThetaCeil)
	}
}

func TestMLE_MixedHistoryConverges(t *testing.T) {
	mle := NewMLE(DefaultPrior())
	rs := []Response{
		{Item: irt.Params{A: 1.2, B: -1, C: 0}, Correct: true},
		{Item: irt.Params{A: 1.0, B: -0.5, C: 0}, Correct: true},
		{Item: irt.Params{A: 1.1, B: 0, C: 0}, Correct: true},
		{Item: irt.Params{A: 1.0, B: 0.5, C: 0}, Correct: false},
		{Item: irt.Params{A: 1.3, B: 1, C: 0}, Correct: false},
	}
	theta, err := mle.solve(rs)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if theta < -1 || theta > 1.5 {
		t.Errorf("theta = %v, implausible for this history", theta)
	}

	est := mle.Estimate(rs)
	if math.Abs(est.Theta-theta) > 1e-9 {
		t.Errorf("Estimate theta %v != solved theta %v", est.Theta, theta)
	}
	if est.SE <= 0 || math.IsInf(est.SE, 0) {
		t.Errorf("SE = %v", est.SE)
	}
}

func TestMLE_UniformHistoryFallsBackToEAP(t *testing.T) {
	prior := DefaultPrior()
	mle := NewMLE(prior)
	eap := NewEAP(prior)

	for _, correct := range []bool{true, false} {
		rs := spread(correct, -2, -1, 0, 1, 2)
		if _, err := mle.solve(rs); err == nil {
			t.Fatalf("uniform correct=%v history should not converge", correct)
		}
		got := mle.Estimate(rs)
		want := eap.Estimate(rs)
		if got != want {
			t.Errorf("fallback mismatch: got %+v, want EAP %+v", got, want)
		}
	}
}

func TestMLE_MatchesEAPDirection(t *testing.T) {
	// Both estimators must agree on direction for the §8 patterns.
	mle := NewMLE(DefaultPrior())
	if est := mle.Estimate(spread(true, -2, -1, 0, 1, 2)); est.Theta <= 0.5 {
		t.Errorf("all-correct MLE (via fallback) theta = %v, want > 0.5", est.Theta)
	}
	if est := mle.Estimate(spread(false, -2, -1, 0, 1, 2)); est.Theta >= -1.0 {
		t.Errorf("all-incorrect MLE (via fallback) theta = %v, want < -1.0", est.Theta)
	}
}

func TestNew_Factory(t *testing.T) {
	eap, err := New(KindEAP, DefaultPrior())
	if err != nil || eap.Kind() != KindEAP {
		t.Errorf("New(eap) = %v, %v", eap, err)
	}
	mle, err := New(KindMLE, DefaultPrior())
	if err != nil || mle.Kind() != KindMLE {
		t.Errorf("New(mle) = %v, %v", mle, err)
	}
	if _, err := New("map", DefaultPrior()); err == nil {
		t.Error("unknown kind should error")
	}
}
