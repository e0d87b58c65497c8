package scoring

import (
	"testing"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/irt"
)

func responses(correct bool, bs ...float64) []ability.Response {
	rs := make([]ability.Response, len(bs))
	for i, b := range bs {
		rs[i] = ability.Response{Item: irt.Params{A: 1, B: b, C: 0.25}, Correct: correct}
	}
	return rs
}

func TestUpdateSkill_WeightScalesDelta(t *testing.T) {
	prior := ability.DefaultPrior()
	eap := ability.NewEAP(prior)
	prev := ability.Estimate{Theta: 0, SE: 1, ResponseCount: 3}
	rs := responses(true, -1, 0, 1, 2)

	plain := UpdateSkill(prev, rs, eap, 1.0)
	half := UpdateSkill(prev, rs, eap, 0.5)
	double := UpdateSkill(prev, rs, eap, 2.0)

	if plain.Theta <= prev.Theta {
		t.Fatalf("correct answers should raise theta: %v", plain.Theta)
	}
	wantHalf := prev.Theta + 0.5*(plain.Theta-prev.Theta)
	if diff := half.Theta - wantHalf; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("half weight theta = %v, want %v", half.Theta, wantHalf)
	}
	if double.Theta <= plain.Theta {
		t.Errorf("double weight (%v) should overshoot plain (%v)", double.Theta, plain.Theta)
	}
	if double.Theta > ability.ThetaCeil {
		t.Errorf("weighted theta %v escaped the clamp", double.Theta)
	}
	// SE and count always come from the fresh estimate.
	if half.SE != plain.SE || half.ResponseCount != plain.ResponseCount {
		t.Errorf("weight must only touch theta: %+v vs %+v", half, plain)
	}
}

func TestUpdateSkill_FirstEstimateIgnoresWeight(t *testing.T) {
	eap := ability.NewEAP(ability.DefaultPrior())
	rs := responses(true, 0)
	got := UpdateSkill(ability.Estimate{}, rs, eap, 2.0)
	want := eap.Estimate(rs)
	if got != want {
		t.Errorf("with no stored estimate the weight must not apply: %+v vs %+v", got, want)
	}
}

func TestEstimateDomain_TracksOwnResponseCount(t *testing.T) {
	prior := ability.DefaultPrior()
	skillA := responses(true, -0.5, 0.5)
	skillB := responses(false, 0, 1)
	union := append(append([]ability.Response{}, skillA...), skillB...)

	domain := EstimateDomain(union, prior)
	if domain.ResponseCount != 4 {
		t.Errorf("domain count = %d, want unioned 4", domain.ResponseCount)
	}
	if domain.SE >= EstimateDomain(skillA, prior).SE {
		t.Error("domain SE should shrink with the larger unioned history")
	}
}

func TestPredictSectionScore_MonotoneInTheta(t *testing.T) {
	se := 0.4
	prev := -1
	for _, theta := range []float64{-3, -1.5, 0, 1.5, 3} {
		r := PredictSectionScore(ability.Estimate{Theta: theta, SE: se})
		center := (r.Low + r.High) / 2
		if center < prev {
			t.Errorf("score center not monotone at theta %v: %d < %d", theta, center, prev)
		}
		prev = center
		if r.Low < SectionScoreMin || r.High > SectionScoreMax || r.Low > r.High {
			t.Errorf("range out of bounds at theta %v: %+v", theta, r)
		}
		if r.Low%10 != 0 || r.High%10 != 0 {
			t.Errorf("scores must be multiples of 10: %+v", r)
		}
	}
}

func TestPredictSectionScore_WidensWithSE(t *testing.T) {
	narrow := PredictSectionScore(ability.Estimate{Theta: 0, SE: 0.3})
	wide := PredictSectionScore(ability.Estimate{Theta: 0, SE: 0.9})
	if wide.Width() <= narrow.Width() {
		t.Errorf("width %d (SE 0.9) should exceed %d (SE 0.3)", wide.Width(), narrow.Width())
	}
}

func TestPredictCompositeScore(t *testing.T) {
	got := PredictCompositeScore(
		ScoreRange{Low: 400, High: 520},
		ScoreRange{Low: 500, High: 640},
	)
	if got.Low != 900 || got.High != 1160 {
		t.Errorf("composite = %+v", got)
	}
}
